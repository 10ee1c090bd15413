package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/validation"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	activityRepo domain.ActivityRepository
	tokens       *auth.TokenIssuer
	tx           domain.TxManager
	validate     *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	activityRepo domain.ActivityRepository,
	tokens *auth.TokenIssuer,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		tokens:       tokens,
		tx:           tx,
		validate:     validate,
	}
}

// Register creates a user account and returns it with a fresh access token.
// The new user is the actor of its own user_registered activity.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, "", apperror.Validation("Validation failed", validation.Translate(err))
	}

	if _, err := u.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, "", apperror.BadRequest("Username already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", apperror.BadRequest("Email already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Username: input.Username,
		Password: string(hash),
		FullName: input.FullName,
		Email:    input.Email,
		Role:     input.Role,
	}
	if input.Position != "" {
		user.Position = &input.Position
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return apperror.BadRequest("Username or email already taken")
			}
			return apperror.Internal(err)
		}
		return appendActivity(ctx, u.activityRepo, user.ID, domain.UserRegisteredDetails{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid username or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

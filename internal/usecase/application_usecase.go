package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/validation"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	activityRepo    domain.ActivityRepository
	tx              domain.TxManager
	validate        *validator.Validate
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	activityRepo domain.ActivityRepository,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
		tx:              tx,
		validate:        validate,
	}
}

func (u *applicationUsecase) CreateApplication(ctx context.Context, actorID int64, app *domain.Application) error {
	app.UserID = actorID
	if app.Status == "" {
		app.Status = domain.StageApplied
	}
	if err := u.validate.Struct(app); err != nil {
		return apperror.Validation("Validation failed", validation.Translate(err))
	}

	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		job, err := u.jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job not found")
			}
			return apperror.Internal(err)
		}

		if err := u.applicationRepo.Create(ctx, app); err != nil {
			return apperror.Internal(err)
		}

		userName := unknownUserName
		if user, err := u.userRepo.GetByID(ctx, app.UserID); err == nil {
			userName = user.FullName
		}
		return appendActivity(ctx, u.activityRepo, actorID, domain.ApplicationCreatedDetails{
			ApplicationID: app.ID,
			UserID:        app.UserID,
			UserName:      userName,
			JobID:         job.ID,
			JobTitle:      job.Title,
		})
	})
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := u.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	apps, err := u.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	if !domain.IsValidStage(status) {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid status %q", status))
	}
	apps, err := u.applicationRepo.GetByStatus(ctx, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

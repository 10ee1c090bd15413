package postgres

import (
	"context"
	"errors"
	"time"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, password, full_name, email, role, position, profile_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	user.CreatedAt = time.Now()
	err := querier(ctx, r.db).QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.FullName,
		user.Email,
		user.Role,
		user.Position,
		user.ProfileImage,
		user.CreatedAt,
	).Scan(&user.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE username = $1`, username)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *userRepo) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT id, username, password, full_name, email, role, position, profile_image, created_at
		FROM users ` + where

	var u domain.User
	err := querier(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email,
		&u.Role, &u.Position, &u.ProfileImage, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, username, password, full_name, email, role, position, profile_image, created_at
		FROM users
		ORDER BY id`

	rows, err := querier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email,
			&u.Role, &u.Position, &u.ProfileImage, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, role = $4, position = $5, profile_image = $6
		WHERE id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.Role, user.Position, user.ProfileImage)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	result, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

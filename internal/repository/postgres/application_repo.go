package postgres

import (
	"context"
	"errors"
	"time"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, user_id, status, cover_letter, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.StageApplied
	}
	return querier(ctx, r.db).QueryRow(ctx, query,
		app.JobID,
		app.UserID,
		app.Status,
		app.CoverLetter,
		app.AppliedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT id, job_id, user_id, status, cover_letter, applied_at, updated_at
		FROM applications
		WHERE id = $1`

	var a domain.Application
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&a.ID, &a.JobID, &a.UserID, &a.Status, &a.CoverLetter, &a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.fetch(ctx, `WHERE job_id = $1`, jobID)
}

func (r *applicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	return r.fetch(ctx, `WHERE user_id = $1`, userID)
}

func (r *applicationRepo) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	return r.fetch(ctx, `WHERE status = $1`, status)
}

func (r *applicationRepo) fetch(ctx context.Context, where string, arg any) ([]domain.Application, error) {
	query := `
		SELECT id, job_id, user_id, status, cover_letter, applied_at, updated_at
		FROM applications ` + where + ` ORDER BY applied_at DESC`

	rows, err := querier(ctx, r.db).Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.UserID, &a.Status, &a.CoverLetter, &a.AppliedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := querier(ctx, r.db).Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := querier(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM applications`).Scan(&count)
	return count, err
}

func (r *applicationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM applications WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *applicationRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM applications WHERE user_id = $1`, userID)
	return err
}

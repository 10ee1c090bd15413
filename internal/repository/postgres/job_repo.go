package postgres

import (
	"context"
	"errors"
	"time"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, description, location, salary, requirements, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	job.CreatedAt = time.Now()
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	return querier(ctx, r.db).QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.Salary,
		job.Requirements,
		job.Status,
		job.UserID,
		job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, title, description, location, salary, requirements, status, user_id, created_at
		FROM jobs
		WHERE id = $1`

	var j domain.Job
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary,
		&j.Requirements, &j.Status, &j.UserID, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	return r.fetch(ctx, `ORDER BY created_at DESC`)
}

func (r *jobRepo) FetchRecent(ctx context.Context, limit int) ([]domain.Job, error) {
	return r.fetch(ctx, `ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *jobRepo) fetch(ctx context.Context, tail string, args ...any) ([]domain.Job, error) {
	query := `
		SELECT id, title, description, location, salary, requirements, status, user_id, created_at
		FROM jobs ` + tail

	rows, err := querier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary,
			&j.Requirements, &j.Status, &j.UserID, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, location = $4, salary = $5, requirements = $6, status = $7
		WHERE id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.Salary, job.Requirements, job.Status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM jobs WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *jobRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM jobs WHERE user_id = $1`, userID)
	return err
}

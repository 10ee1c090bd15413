package postgres

import (
	"context"
	"errors"
	"time"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	query := `
		INSERT INTO interviews (application_id, recruiter_id, scheduled_at, duration, location, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	if interview.Status == "" {
		interview.Status = domain.InterviewStatusScheduled
	}
	return querier(ctx, r.db).QueryRow(ctx, query,
		interview.ApplicationID,
		interview.RecruiterID,
		interview.ScheduledAt,
		interview.Duration,
		interview.Location,
		interview.Notes,
		interview.Status,
	).Scan(&interview.ID)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	query := `
		SELECT id, application_id, recruiter_id, scheduled_at, duration, location, notes, status
		FROM interviews
		WHERE id = $1`

	var iv domain.Interview
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&iv.ID, &iv.ApplicationID, &iv.RecruiterID, &iv.ScheduledAt,
		&iv.Duration, &iv.Location, &iv.Notes, &iv.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	return r.fetch(ctx, `WHERE application_id = $1 ORDER BY scheduled_at`, applicationID)
}

func (r *interviewRepo) FetchUpcoming(ctx context.Context, after time.Time, limit int) ([]domain.Interview, error) {
	return r.fetch(ctx,
		`WHERE scheduled_at > $1 AND status = 'scheduled' ORDER BY scheduled_at LIMIT $2`,
		after, limit)
}

func (r *interviewRepo) fetch(ctx context.Context, tail string, args ...any) ([]domain.Interview, error) {
	query := `
		SELECT id, application_id, recruiter_id, scheduled_at, duration, location, notes, status
		FROM interviews ` + tail

	rows, err := querier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := rows.Scan(
			&iv.ID, &iv.ApplicationID, &iv.RecruiterID, &iv.ScheduledAt,
			&iv.Duration, &iv.Location, &iv.Notes, &iv.Status,
		); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Update(ctx context.Context, interview *domain.Interview) error {
	query := `
		UPDATE interviews
		SET scheduled_at = $2, duration = $3, location = $4, notes = $5, status = $6
		WHERE id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query,
		interview.ID, interview.ScheduledAt, interview.Duration,
		interview.Location, interview.Notes, interview.Status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) CountScheduledAfter(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM interviews WHERE scheduled_at > $1 AND status = 'scheduled'`,
		after).Scan(&count)
	return count, err
}

func (r *interviewRepo) DeleteByRecruiterID(ctx context.Context, recruiterID int64) error {
	_, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM interviews WHERE recruiter_id = $1`, recruiterID)
	return err
}

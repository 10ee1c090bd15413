package postgres

import (
	"context"
	"errors"
	"time"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, full_name, email, phone, resume_url, photo_url, education, experience, skills, stage, notes, user_id, created_at`

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (full_name, email, phone, resume_url, photo_url, education, experience, skills, stage, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	candidate.CreatedAt = time.Now()
	if candidate.Stage == "" {
		candidate.Stage = domain.StageApplied
	}
	err := querier(ctx, r.db).QueryRow(ctx, query,
		candidate.FullName,
		candidate.Email,
		candidate.Phone,
		candidate.ResumeURL,
		candidate.PhotoURL,
		candidate.Education,
		candidate.Experience,
		pq.Array(candidate.Skills),
		candidate.Stage,
		candidate.Notes,
		candidate.UserID,
		candidate.CreatedAt,
	).Scan(&candidate.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	return r.getBy(ctx, `WHERE user_id = $1`, userID)
}

func (r *candidateRepo) getBy(ctx context.Context, where string, arg any) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ` + where

	var c domain.Candidate
	var skills []string
	err := querier(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.ResumeURL, &c.PhotoURL,
		&c.Education, &c.Experience, pq.Array(&skills), &c.Stage,
		&c.Notes, &c.UserID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	c.Skills = skills
	return &c, nil
}

func (r *candidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	return r.fetch(ctx, `ORDER BY created_at DESC`)
}

func (r *candidateRepo) FetchByStage(ctx context.Context, stage string) ([]domain.Candidate, error) {
	return r.fetch(ctx, `WHERE stage = $1 ORDER BY created_at DESC`, stage)
}

func (r *candidateRepo) fetch(ctx context.Context, tail string, args ...any) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ` + tail

	rows, err := querier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		var skills []string
		if err := rows.Scan(
			&c.ID, &c.FullName, &c.Email, &c.Phone, &c.ResumeURL, &c.PhotoURL,
			&c.Education, &c.Experience, pq.Array(&skills), &c.Stage,
			&c.Notes, &c.UserID, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Skills = skills
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		UPDATE candidates
		SET full_name = $2, email = $3, phone = $4, resume_url = $5, photo_url = $6,
		    education = $7, experience = $8, skills = $9, notes = $10, user_id = $11
		WHERE id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query,
		candidate.ID, candidate.FullName, candidate.Email, candidate.Phone,
		candidate.ResumeURL, candidate.PhotoURL, candidate.Education,
		candidate.Experience, pq.Array(candidate.Skills), candidate.Notes, candidate.UserID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateStage(ctx context.Context, id int64, stage string) error {
	result, err := querier(ctx, r.db).Exec(ctx,
		`UPDATE candidates SET stage = $2 WHERE id = $1`, id, stage)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM candidates WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func (r *candidateRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM candidates WHERE user_id = $1`, userID)
	return err
}

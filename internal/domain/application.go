package domain

import (
	"context"
	"time"
)

// Application links an applicant user to a job. Its Status uses the same
// vocabulary as Candidate.Stage but is an independent field.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id" validate:"required"`
	UserID      int64     `json:"user_id" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=applied screening interview offer hired rejected"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByUserID(ctx context.Context, userID int64) ([]Application, error)
	GetByStatus(ctx context.Context, status string) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, actorID int64, app *Application) error
	GetApplication(ctx context.Context, id int64) (*Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByUser(ctx context.Context, userID int64) ([]Application, error)
	ListByStatus(ctx context.Context, status string) ([]Application, error)
}

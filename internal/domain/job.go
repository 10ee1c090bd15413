package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate value")
)

// Job statuses
const (
	JobStatusOpen   = "open"
	JobStatusPaused = "paused"
	JobStatusClosed = "closed"
)

type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title" validate:"required,max=150"`
	Description  string    `json:"description" validate:"required"`
	Location     string    `json:"location" validate:"required,max=150"`
	Salary       *string   `json:"salary,omitempty"`
	Requirements *string   `json:"requirements,omitempty"`
	Status       string    `json:"status" validate:"omitempty,oneof=open paused closed"`
	UserID       int64     `json:"user_id"` // recruiter who posted the job
	CreatedAt    time.Time `json:"created_at"`
}

// JobPatch carries a partial update; nil fields are left untouched.
type JobPatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Salary       *string `json:"salary"`
	Requirements *string `json:"requirements"`
	Status       *string `json:"status" validate:"omitempty,oneof=open paused closed"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context) ([]Job, error)
	FetchRecent(ctx context.Context, limit int) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actorID int64, job *Job) error
	UpdateJob(ctx context.Context, actorID, id int64, patch JobPatch) (*Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	RecentJobs(ctx context.Context, limit int) ([]Job, error)
}

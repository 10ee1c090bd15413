package domain

import (
	"context"
	"time"
)

// Interview statuses
const (
	InterviewStatusScheduled = "scheduled"
	InterviewStatusCompleted = "completed"
	InterviewStatusCancelled = "cancelled"
)

type Interview struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id" validate:"required"`
	RecruiterID   int64     `json:"recruiter_id" validate:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
	Duration      int       `json:"duration" validate:"required,gt=0"` // minutes
	Location      *string   `json:"location,omitempty"`                // may be a URL for remote interviews
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// InterviewPatch carries a partial update; nil fields are left untouched.
type InterviewPatch struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Duration    *int       `json:"duration" validate:"omitempty,gt=0"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	GetByApplicationID(ctx context.Context, applicationID int64) ([]Interview, error)
	FetchUpcoming(ctx context.Context, after time.Time, limit int) ([]Interview, error)
	Update(ctx context.Context, interview *Interview) error
	CountScheduledAfter(ctx context.Context, after time.Time) (int64, error)
	DeleteByRecruiterID(ctx context.Context, recruiterID int64) error
}

type InterviewUsecase interface {
	ScheduleInterview(ctx context.Context, actorID int64, interview *Interview) error
	UpdateInterview(ctx context.Context, actorID, id int64, patch InterviewPatch) (*Interview, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]Interview, error)
	UpcomingInterviews(ctx context.Context, limit int) ([]Interview, error)
}

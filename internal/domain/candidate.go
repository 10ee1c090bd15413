package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name" validate:"required,max=100"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      *string   `json:"phone,omitempty"`
	ResumeURL  *string   `json:"resume_url,omitempty"`
	PhotoURL   *string   `json:"photo_url,omitempty"`
	Education  *string   `json:"education,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Skills     []string  `json:"skills"`
	Stage      string    `json:"stage" validate:"omitempty,oneof=applied screening interview offer hired rejected"`
	Notes      *string   `json:"notes,omitempty"`
	UserID     *int64    `json:"user_id,omitempty"` // optional link to a registered user
	CreatedAt  time.Time `json:"created_at"`
}

// CandidatePatch carries a partial update. Stage changes are not applied
// here; they go through the pipeline usecase so the transition is recorded.
type CandidatePatch struct {
	FullName   *string  `json:"full_name"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	Phone      *string  `json:"phone"`
	ResumeURL  *string  `json:"resume_url"`
	Education  *string  `json:"education"`
	Experience *string  `json:"experience"`
	Skills     []string `json:"skills"`
	Stage      *string  `json:"stage" validate:"omitempty,oneof=applied screening interview offer hired rejected"`
	Notes      *string  `json:"notes"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	Fetch(ctx context.Context) ([]Candidate, error)
	FetchByStage(ctx context.Context, stage string) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	UpdateStage(ctx context.Context, id int64, stage string) error
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, actorID int64, candidate *Candidate) error
	UpdateCandidate(ctx context.Context, actorID, id int64, patch CandidatePatch) (*Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
	ListCandidates(ctx context.Context, stage string) ([]Candidate, error)
	SetProfilePhoto(ctx context.Context, id int64, photoURL string) (*Candidate, error)
}

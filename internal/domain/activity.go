package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Activity types. The details payload shape is fixed per type; see the
// *Details structs below.
const (
	ActivityJobCreated               = "job_created"
	ActivityJobUpdated               = "job_updated"
	ActivityCandidateCreated         = "candidate_created"
	ActivityCandidateStageChanged    = "candidate_stage_changed"
	ActivityApplicationCreated       = "application_created"
	ActivityApplicationStatusChanged = "application_status_changed"
	ActivityInterviewScheduled       = "interview_scheduled"
	ActivityInterviewStatusChanged   = "interview_status_changed"
	ActivityUserRegistered           = "user_registered"
	ActivityUserDeleted              = "user_deleted"
)

// Activity is an immutable audit record. It is appended on every mutation
// of interest and never updated or deleted afterwards.
type Activity struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"` // acting user
	Type      string          `json:"type"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}

// ActivityDetails is the tagged union over activity payloads. Each variant
// carries the field set for one activity type, so producers and consumers
// agree at compile time instead of through an untyped map.
type ActivityDetails interface {
	ActivityType() string
}

type JobCreatedDetails struct {
	JobID    int64  `json:"jobId"`
	JobTitle string `json:"jobTitle"`
}

type JobUpdatedDetails struct {
	JobID    int64  `json:"jobId"`
	JobTitle string `json:"jobTitle"`
}

type CandidateCreatedDetails struct {
	CandidateID   int64  `json:"candidateId"`
	CandidateName string `json:"candidateName"`
}

type CandidateStageChangedDetails struct {
	CandidateID   int64  `json:"candidateId"`
	CandidateName string `json:"candidateName"`
	OldStage      string `json:"oldStage"`
	NewStage      string `json:"newStage"`
}

type ApplicationCreatedDetails struct {
	ApplicationID int64  `json:"applicationId"`
	UserID        int64  `json:"userId"`
	UserName      string `json:"userName"`
	JobID         int64  `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
}

type ApplicationStatusChangedDetails struct {
	ApplicationID int64  `json:"applicationId"`
	UserID        int64  `json:"userId"`
	UserName      string `json:"userName"`
	JobID         int64  `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
}

type InterviewScheduledDetails struct {
	InterviewID   int64     `json:"interviewId"`
	ApplicationID int64     `json:"applicationId"`
	UserID        int64     `json:"userId"`
	UserName      string    `json:"userName"`
	JobID         int64     `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	ScheduledAt   time.Time `json:"scheduledAt"`
}

type InterviewStatusChangedDetails struct {
	InterviewID int64  `json:"interviewId"`
	UserID      int64  `json:"userId"`
	UserName    string `json:"userName"`
	OldStatus   string `json:"oldStatus"`
	NewStatus   string `json:"newStatus"`
}

type UserRegisteredDetails struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UserDeletedDetails struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

func (JobCreatedDetails) ActivityType() string               { return ActivityJobCreated }
func (JobUpdatedDetails) ActivityType() string               { return ActivityJobUpdated }
func (CandidateCreatedDetails) ActivityType() string         { return ActivityCandidateCreated }
func (CandidateStageChangedDetails) ActivityType() string    { return ActivityCandidateStageChanged }
func (ApplicationCreatedDetails) ActivityType() string       { return ActivityApplicationCreated }
func (ApplicationStatusChangedDetails) ActivityType() string { return ActivityApplicationStatusChanged }
func (InterviewScheduledDetails) ActivityType() string       { return ActivityInterviewScheduled }
func (InterviewStatusChangedDetails) ActivityType() string   { return ActivityInterviewStatusChanged }
func (UserRegisteredDetails) ActivityType() string           { return ActivityUserRegistered }
func (UserDeletedDetails) ActivityType() string              { return ActivityUserDeleted }

// NewActivity builds an appendable record from a typed payload.
func NewActivity(actorID int64, details ActivityDetails) (*Activity, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("marshal activity details: %w", err)
	}
	return &Activity{
		UserID:  actorID,
		Type:    details.ActivityType(),
		Details: raw,
	}, nil
}

// DecodeActivityDetails restores the typed payload from a stored record.
func DecodeActivityDetails(a *Activity) (ActivityDetails, error) {
	var details ActivityDetails
	switch a.Type {
	case ActivityJobCreated:
		details = &JobCreatedDetails{}
	case ActivityJobUpdated:
		details = &JobUpdatedDetails{}
	case ActivityCandidateCreated:
		details = &CandidateCreatedDetails{}
	case ActivityCandidateStageChanged:
		details = &CandidateStageChangedDetails{}
	case ActivityApplicationCreated:
		details = &ApplicationCreatedDetails{}
	case ActivityApplicationStatusChanged:
		details = &ApplicationStatusChangedDetails{}
	case ActivityInterviewScheduled:
		details = &InterviewScheduledDetails{}
	case ActivityInterviewStatusChanged:
		details = &InterviewStatusChangedDetails{}
	case ActivityUserRegistered:
		details = &UserRegisteredDetails{}
	case ActivityUserDeleted:
		details = &UserDeletedDetails{}
	default:
		return nil, fmt.Errorf("unknown activity type %q", a.Type)
	}
	if err := json.Unmarshal(a.Details, details); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", a.Type, err)
	}
	return details, nil
}

type ActivityRepository interface {
	Append(ctx context.Context, activity *Activity) error
	Recent(ctx context.Context, limit int) ([]Activity, error)
}

type ActivityUsecase interface {
	RecentActivities(ctx context.Context, limit int) ([]Activity, error)
}

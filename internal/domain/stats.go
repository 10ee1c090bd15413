package domain

import "context"

// DashboardStats is the headline aggregate view shown on the landing page.
type DashboardStats struct {
	ActiveJobs          int64   `json:"activeJobs"`
	NewCandidates       int64   `json:"newCandidates"`
	ScheduledInterviews int64   `json:"scheduledInterviews"`
	HireRate            float64 `json:"hireRate"` // percentage, one decimal
}

// PipelineStats partitions applications over the five forward stages.
// Rejected applications appear in no bucket.
type PipelineStats struct {
	Applied   int64 `json:"applied"`
	Screening int64 `json:"screening"`
	Interview int64 `json:"interview"`
	Offer     int64 `json:"offer"`
	Hired     int64 `json:"hired"`
}

// StatsUsecase recomputes both views from current entity state on every
// call; nothing is cached or maintained incrementally.
type StatsUsecase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	PipelineStats(ctx context.Context) (*PipelineStats, error)
}

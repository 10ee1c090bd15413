package usecase

import (
	"context"
	"math"
	"time"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
)

// newCandidateWindow is the trailing window for the "new candidates"
// dashboard number. Fixed at 30 days.
const newCandidateWindow = 30 * 24 * time.Hour

type statsUsecase struct {
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	applicationRepo domain.ApplicationRepository
	interviewRepo   domain.InterviewRepository
}

// NewStatsUsecase creates the aggregate statistics engine. Both views are
// recomputed from current entity state on every call.
func NewStatsUsecase(
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	applicationRepo domain.ApplicationRepository,
	interviewRepo domain.InterviewRepository,
) domain.StatsUsecase {
	return &statsUsecase{
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		interviewRepo:   interviewRepo,
	}
}

func (u *statsUsecase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := time.Now()

	activeJobs, err := u.jobRepo.CountByStatus(ctx, domain.JobStatusOpen)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	newCandidates, err := u.candidateRepo.CountCreatedSince(ctx, now.Add(-newCandidateWindow))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Scheduled means scheduled in the future; past interviews that were
	// never marked completed do not count.
	scheduledInterviews, err := u.interviewRepo.CountScheduledAfter(ctx, now)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalApplications, err := u.applicationRepo.CountAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	hiredApplications, err := u.applicationRepo.CountByStatus(ctx, domain.StageHired)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var hireRate float64
	if totalApplications > 0 {
		rate := float64(hiredApplications) / float64(totalApplications) * 100
		hireRate = math.Round(rate*10) / 10
	}

	return &domain.DashboardStats{
		ActiveJobs:          activeJobs,
		NewCandidates:       newCandidates,
		ScheduledInterviews: scheduledInterviews,
		HireRate:            hireRate,
	}, nil
}

func (u *statsUsecase) PipelineStats(ctx context.Context) (*domain.PipelineStats, error) {
	counts := make(map[string]int64, len(domain.PipelineStages))
	for _, stage := range domain.PipelineStages {
		n, err := u.applicationRepo.CountByStatus(ctx, stage)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		counts[stage] = n
	}

	return &domain.PipelineStats{
		Applied:   counts[domain.StageApplied],
		Screening: counts[domain.StageScreening],
		Interview: counts[domain.StageInterview],
		Offer:     counts[domain.StageOffer],
		Hired:     counts[domain.StageHired],
	}, nil
}

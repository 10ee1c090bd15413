package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestDashboardStats(t *testing.T) {
	t.Run("Should report zeros on an empty system", func(t *testing.T) {
		e := newEnv(t)

		stats, err := e.statsUC.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.ActiveJobs)
		assert.Equal(t, int64(0), stats.NewCandidates)
		assert.Equal(t, int64(0), stats.ScheduledInterviews)
		assert.Equal(t, float64(0), stats.HireRate)
	})

	t.Run("Should count only open jobs as active", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		e.createJob(t, recruiter.ID, "Backend Engineer")
		job := e.createJob(t, recruiter.ID, "Frontend Engineer")

		closed := domain.JobStatusClosed
		_, err := e.jobUC.UpdateJob(context.Background(), recruiter.ID, job.ID, domain.JobPatch{Status: &closed})
		require.NoError(t, err)

		stats, err := e.statsUC.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.ActiveJobs)
	})

	t.Run("Should count candidates created inside the window", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")
		e.createCandidate(t, recruiter.ID, "Alan Turing", "alan@example.com")

		stats, err := e.statsUC.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.NewCandidates)
	})

	t.Run("Should count only future interviews still in scheduled status", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")
		app := e.apply(t, applicant.ID, job.ID)

		future := &domain.Interview{ApplicationID: app.ID, ScheduledAt: time.Now().Add(48 * time.Hour), Duration: 60}
		require.NoError(t, e.interviewUC.ScheduleInterview(context.Background(), recruiter.ID, future))

		cancelled := &domain.Interview{ApplicationID: app.ID, ScheduledAt: time.Now().Add(24 * time.Hour), Duration: 30}
		require.NoError(t, e.interviewUC.ScheduleInterview(context.Background(), recruiter.ID, cancelled))
		status := domain.InterviewStatusCancelled
		_, err := e.interviewUC.UpdateInterview(context.Background(), recruiter.ID, cancelled.ID, domain.InterviewPatch{Status: &status})
		require.NoError(t, err)

		stats, err := e.statsUC.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.ScheduledInterviews)
	})

	t.Run("Should round hire rate to one decimal", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")

		// 1 hired out of 3 applications -> 33.3%
		var hiredApp *domain.Application
		for i, name := range []string{"user1", "user2", "user3"} {
			applicant := e.registerUser(t, name, domain.RoleCandidate)
			app := e.apply(t, applicant.ID, job.ID)
			if i == 0 {
				hiredApp = app
			}
		}
		_, err := e.pipelineUC.TransitionApplicationStatus(context.Background(), recruiter.ID, hiredApp.ID, domain.StageHired)
		require.NoError(t, err)

		stats, err := e.statsUC.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 33.3, stats.HireRate)
	})
}

func TestPipelineStats(t *testing.T) {
	t.Run("Should partition applications across funnel stages", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")

		stages := []string{
			domain.StageApplied,
			domain.StageScreening, domain.StageScreening,
			domain.StageInterview,
			domain.StageHired,
			domain.StageRejected,
		}
		for i, stage := range stages {
			applicant := e.registerUser(t, "user"+string(rune('a'+i)), domain.RoleCandidate)
			app := e.apply(t, applicant.ID, job.ID)
			if stage != domain.StageApplied {
				_, err := e.pipelineUC.TransitionApplicationStatus(context.Background(), recruiter.ID, app.ID, stage)
				require.NoError(t, err)
			}
		}

		stats, err := e.statsUC.PipelineStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Applied)
		assert.Equal(t, int64(2), stats.Screening)
		assert.Equal(t, int64(1), stats.Interview)
		assert.Equal(t, int64(0), stats.Offer)
		assert.Equal(t, int64(1), stats.Hired)
		// Rejected applications sit outside the funnel entirely.
	})
}

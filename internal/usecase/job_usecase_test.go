package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestCreateJob(t *testing.T) {
	t.Run("Should default to open and record a job_created activity", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)

		job := e.createJob(t, recruiter.ID, "Backend Engineer")
		assert.Equal(t, domain.JobStatusOpen, job.Status)
		assert.Equal(t, recruiter.ID, job.UserID)

		created := activitiesOfType(e.recentActivities(t, 10), domain.ActivityJobCreated)
		require.Len(t, created, 1)
		assert.Equal(t, recruiter.ID, created[0].UserID)

		details, err := domain.DecodeActivityDetails(&created[0])
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", details.(*domain.JobCreatedDetails).JobTitle)
	})

	t.Run("Should reject a job without required fields", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)

		err := e.jobUC.CreateJob(context.Background(), recruiter.ID, &domain.Job{Title: "No description"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Validation failed")
	})
}

func TestUpdateJob(t *testing.T) {
	t.Run("Should apply only the provided fields and record job_updated", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")

		title := "Senior Backend Engineer"
		updated, err := e.jobUC.UpdateJob(context.Background(), recruiter.ID, job.ID, domain.JobPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", updated.Title)
		assert.Equal(t, job.Description, updated.Description)
		assert.Equal(t, job.Location, updated.Location)

		updates := activitiesOfType(e.recentActivities(t, 10), domain.ActivityJobUpdated)
		require.Len(t, updates, 1)
	})

	t.Run("Should reject an invalid status", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")

		bad := "archived"
		_, err := e.jobUC.UpdateJob(context.Background(), recruiter.ID, job.ID, domain.JobPatch{Status: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Validation failed")
	})

	t.Run("Should return not found for a missing job", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)

		title := "Anything"
		_, err := e.jobUC.UpdateJob(context.Background(), recruiter.ID, 99, domain.JobPatch{Title: &title})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestListJobs(t *testing.T) {
	t.Run("Should return jobs newest first and honor the recent limit", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		e.createJob(t, recruiter.ID, "First")
		e.createJob(t, recruiter.ID, "Second")
		e.createJob(t, recruiter.ID, "Third")

		jobs, err := e.jobUC.ListJobs(context.Background())
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, "Third", jobs[0].Title)

		recent, err := e.jobUC.RecentJobs(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "Third", recent[0].Title)
		assert.Equal(t, "Second", recent[1].Title)
	})
}

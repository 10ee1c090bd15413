package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestCreateApplication(t *testing.T) {
	t.Run("Should default to applied and record application_created", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")

		app := e.apply(t, applicant.ID, job.ID)
		assert.Equal(t, domain.StageApplied, app.Status)
		assert.Equal(t, applicant.ID, app.UserID)

		created := activitiesOfType(e.recentActivities(t, 10), domain.ActivityApplicationCreated)
		require.Len(t, created, 1)
		assert.Equal(t, applicant.ID, created[0].UserID)

		details, err := domain.DecodeActivityDetails(&created[0])
		require.NoError(t, err)
		payload := details.(*domain.ApplicationCreatedDetails)
		assert.Equal(t, "Backend Engineer", payload.JobTitle)
		assert.Equal(t, applicant.FullName, payload.UserName)
	})

	t.Run("Should reject an application to a missing job", func(t *testing.T) {
		e := newEnv(t)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)

		err := e.appUC.CreateApplication(context.Background(), applicant.ID, &domain.Application{JobID: 42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")

		// The failed attempt leaves no partial records behind.
		assert.Empty(t, activitiesOfType(e.recentActivities(t, 10), domain.ActivityApplicationCreated))
	})
}

func TestListApplications(t *testing.T) {
	t.Run("Should filter by job, user, and status independently", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		alice := e.registerUser(t, "alice", domain.RoleCandidate)
		bob := e.registerUser(t, "bob", domain.RoleCandidate)
		backend := e.createJob(t, recruiter.ID, "Backend Engineer")
		frontend := e.createJob(t, recruiter.ID, "Frontend Engineer")

		aliceApp := e.apply(t, alice.ID, backend.ID)
		e.apply(t, alice.ID, frontend.ID)
		e.apply(t, bob.ID, backend.ID)

		byJob, err := e.appUC.ListByJob(context.Background(), backend.ID)
		require.NoError(t, err)
		assert.Len(t, byJob, 2)

		byUser, err := e.appUC.ListByUser(context.Background(), alice.ID)
		require.NoError(t, err)
		assert.Len(t, byUser, 2)

		_, err = e.pipelineUC.TransitionApplicationStatus(context.Background(), recruiter.ID, aliceApp.ID, domain.StageOffer)
		require.NoError(t, err)

		byStatus, err := e.appUC.ListByStatus(context.Background(), domain.StageOffer)
		require.NoError(t, err)
		require.Len(t, byStatus, 1)
		assert.Equal(t, aliceApp.ID, byStatus[0].ID)
	})

	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.appUC.ListByStatus(context.Background(), "pending")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})
}

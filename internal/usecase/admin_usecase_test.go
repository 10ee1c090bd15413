package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestDeleteUser(t *testing.T) {
	t.Run("Should cascade to applications, interviews, jobs, and candidate profile", func(t *testing.T) {
		e := newEnv(t)
		admin := e.registerUser(t, "admin1", domain.RoleAdmin)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)

		job := e.createJob(t, recruiter.ID, "Backend Engineer")
		app := e.apply(t, applicant.ID, job.ID)
		interview := &domain.Interview{ApplicationID: app.ID, ScheduledAt: time.Now().Add(24 * time.Hour), Duration: 60}
		require.NoError(t, e.interviewUC.ScheduleInterview(context.Background(), recruiter.ID, interview))

		candidate := &domain.Candidate{
			FullName: "Applicant One",
			Email:    "applicant1-profile@example.com",
			UserID:   &applicant.ID,
		}
		require.NoError(t, e.candidateUC.CreateCandidate(context.Background(), recruiter.ID, candidate))

		// Deleting the applicant removes their application and linked
		// candidate profile but leaves the recruiter's job alone.
		require.NoError(t, e.adminUC.DeleteUser(context.Background(), admin.ID, applicant.ID))

		_, err := e.appUC.GetApplication(context.Background(), app.ID)
		assert.Contains(t, err.Error(), "Application not found")
		_, err = e.candidateUC.GetCandidate(context.Background(), candidate.ID)
		assert.Contains(t, err.Error(), "Candidate not found")
		_, err = e.jobUC.GetJob(context.Background(), job.ID)
		assert.NoError(t, err)

		// Deleting the recruiter removes their job and scheduled interviews.
		require.NoError(t, e.adminUC.DeleteUser(context.Background(), admin.ID, recruiter.ID))
		_, err = e.jobUC.GetJob(context.Background(), job.ID)
		assert.Contains(t, err.Error(), "Job not found")
		interviews, err := e.interviewUC.ListByApplication(context.Background(), app.ID)
		require.NoError(t, err)
		assert.Empty(t, interviews)
	})

	t.Run("Should keep the audit log after the actor is gone", func(t *testing.T) {
		e := newEnv(t)
		admin := e.registerUser(t, "admin1", domain.RoleAdmin)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		e.createJob(t, recruiter.ID, "Backend Engineer")

		before := len(e.recentActivities(t, 100))
		require.NoError(t, e.adminUC.DeleteUser(context.Background(), admin.ID, recruiter.ID))

		activities := e.recentActivities(t, 100)
		// Everything survives plus the new user_deleted record.
		assert.Len(t, activities, before+1)

		deleted := activitiesOfType(activities, domain.ActivityUserDeleted)
		require.Len(t, deleted, 1)
		assert.Equal(t, admin.ID, deleted[0].UserID)

		details, err := domain.DecodeActivityDetails(&deleted[0])
		require.NoError(t, err)
		assert.Equal(t, "recruiter1", details.(*domain.UserDeletedDetails).Username)
	})

	t.Run("Should refuse to delete the acting admin", func(t *testing.T) {
		e := newEnv(t)
		admin := e.registerUser(t, "admin1", domain.RoleAdmin)

		err := e.adminUC.DeleteUser(context.Background(), admin.ID, admin.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot delete your own account")
	})

	t.Run("Should return not found for an unknown user", func(t *testing.T) {
		e := newEnv(t)
		admin := e.registerUser(t, "admin1", domain.RoleAdmin)

		err := e.adminUC.DeleteUser(context.Background(), admin.ID, 999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}

func TestListUsers(t *testing.T) {
	t.Run("Should list all accounts in creation order", func(t *testing.T) {
		e := newEnv(t)
		e.registerUser(t, "admin1", domain.RoleAdmin)
		e.registerUser(t, "recruiter1", domain.RoleRecruiter)

		users, err := e.adminUC.ListUsers(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "admin1", users[0].Username)
		assert.Equal(t, "recruiter1", users[1].Username)
	})
}

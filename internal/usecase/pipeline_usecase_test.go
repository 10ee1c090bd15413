package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestTransitionCandidateStage(t *testing.T) {
	t.Run("Should update stage and record exactly one transition activity", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		updated, err := e.pipelineUC.TransitionCandidateStage(context.Background(), recruiter.ID, candidate.ID, domain.StageScreening)
		require.NoError(t, err)
		assert.Equal(t, domain.StageScreening, updated.Stage)

		transitions := activitiesOfType(e.recentActivities(t, 50), domain.ActivityCandidateStageChanged)
		require.Len(t, transitions, 1)
		assert.Equal(t, recruiter.ID, transitions[0].UserID)

		details, err := domain.DecodeActivityDetails(&transitions[0])
		require.NoError(t, err)
		payload := details.(*domain.CandidateStageChangedDetails)
		assert.Equal(t, candidate.ID, payload.CandidateID)
		assert.Equal(t, "Ada Lovelace", payload.CandidateName)
		assert.Equal(t, domain.StageApplied, payload.OldStage)
		assert.Equal(t, domain.StageScreening, payload.NewStage)
	})

	t.Run("Should not record an activity for a same-stage write", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		updated, err := e.pipelineUC.TransitionCandidateStage(context.Background(), recruiter.ID, candidate.ID, domain.StageApplied)
		require.NoError(t, err)
		assert.Equal(t, domain.StageApplied, updated.Stage)

		transitions := activitiesOfType(e.recentActivities(t, 50), domain.ActivityCandidateStageChanged)
		assert.Empty(t, transitions)
	})

	t.Run("Should allow any stage to move to any other stage", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		// Backwards and sideways moves are all legal.
		for _, stage := range []string{domain.StageHired, domain.StageApplied, domain.StageRejected, domain.StageOffer} {
			updated, err := e.pipelineUC.TransitionCandidateStage(context.Background(), recruiter.ID, candidate.ID, stage)
			require.NoError(t, err)
			assert.Equal(t, stage, updated.Stage)
		}

		transitions := activitiesOfType(e.recentActivities(t, 50), domain.ActivityCandidateStageChanged)
		assert.Len(t, transitions, 4)
	})

	t.Run("Should reject a stage outside the vocabulary", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		_, err := e.pipelineUC.TransitionCandidateStage(context.Background(), recruiter.ID, candidate.ID, "shortlisted")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid stage")

		// Nothing changed and nothing was logged.
		got, err := e.candidateUC.GetCandidate(context.Background(), candidate.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StageApplied, got.Stage)
		assert.Empty(t, activitiesOfType(e.recentActivities(t, 50), domain.ActivityCandidateStageChanged))
	})

	t.Run("Should return not found for a missing candidate", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)

		_, err := e.pipelineUC.TransitionCandidateStage(context.Background(), recruiter.ID, 999, domain.StageScreening)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})
}

func TestTransitionApplicationStatus(t *testing.T) {
	t.Run("Should update status and capture job title and applicant name", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")
		app := e.apply(t, applicant.ID, job.ID)

		updated, err := e.pipelineUC.TransitionApplicationStatus(context.Background(), recruiter.ID, app.ID, domain.StageInterview)
		require.NoError(t, err)
		assert.Equal(t, domain.StageInterview, updated.Status)

		transitions := activitiesOfType(e.recentActivities(t, 50), domain.ActivityApplicationStatusChanged)
		require.Len(t, transitions, 1)

		details, err := domain.DecodeActivityDetails(&transitions[0])
		require.NoError(t, err)
		payload := details.(*domain.ApplicationStatusChangedDetails)
		assert.Equal(t, "Backend Engineer", payload.JobTitle)
		assert.Equal(t, applicant.FullName, payload.UserName)
		assert.Equal(t, domain.StageApplied, payload.OldStatus)
		assert.Equal(t, domain.StageInterview, payload.NewStatus)
	})

	t.Run("Should fall back to placeholder names when references are gone", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")
		app := e.apply(t, applicant.ID, job.ID)

		// Deleting the recruiter cascades away the job, so the payload has to
		// fall back on the job side.
		admin := e.registerUser(t, "admin1", domain.RoleAdmin)
		require.NoError(t, e.adminUC.DeleteUser(context.Background(), admin.ID, recruiter.ID))

		updated, err := e.pipelineUC.TransitionApplicationStatus(context.Background(), applicant.ID, app.ID, domain.StageScreening)
		require.NoError(t, err)
		assert.Equal(t, domain.StageScreening, updated.Status)

		transitions := activitiesOfType(e.recentActivities(t, 50), domain.ActivityApplicationStatusChanged)
		require.Len(t, transitions, 1)

		details, err := domain.DecodeActivityDetails(&transitions[0])
		require.NoError(t, err)
		payload := details.(*domain.ApplicationStatusChangedDetails)
		assert.Equal(t, "Unknown Job", payload.JobTitle)
		assert.Equal(t, applicant.FullName, payload.UserName)
	})

	t.Run("Should not record an activity for a same-status write", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		applicant := e.registerUser(t, "applicant1", domain.RoleCandidate)
		job := e.createJob(t, recruiter.ID, "Backend Engineer")
		app := e.apply(t, applicant.ID, job.ID)

		_, err := e.pipelineUC.TransitionApplicationStatus(context.Background(), recruiter.ID, app.ID, domain.StageApplied)
		require.NoError(t, err)
		assert.Empty(t, activitiesOfType(e.recentActivities(t, 50), domain.ActivityApplicationStatusChanged))
	})
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestCreateCandidate(t *testing.T) {
	t.Run("Should default to applied and record candidate_created", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)

		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")
		assert.Equal(t, domain.StageApplied, candidate.Stage)

		created := activitiesOfType(e.recentActivities(t, 10), domain.ActivityCandidateCreated)
		require.Len(t, created, 1)
		assert.Equal(t, recruiter.ID, created[0].UserID)
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		err := e.candidateUC.CreateCandidate(context.Background(), recruiter.ID, &domain.Candidate{
			FullName: "Ada Again",
			Email:    "ada@example.com",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestUpdateCandidate(t *testing.T) {
	t.Run("Should apply profile fields without touching the stage", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		phone := "+44 20 7946 0000"
		updated, err := e.candidateUC.UpdateCandidate(context.Background(), recruiter.ID, candidate.ID, domain.CandidatePatch{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, &phone, updated.Phone)
		assert.Equal(t, domain.StageApplied, updated.Stage)
		assert.Empty(t, activitiesOfType(e.recentActivities(t, 10), domain.ActivityCandidateStageChanged))
	})

	t.Run("Should route a stage change through the pipeline", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		stage := domain.StageOffer
		updated, err := e.candidateUC.UpdateCandidate(context.Background(), recruiter.ID, candidate.ID, domain.CandidatePatch{Stage: &stage})
		require.NoError(t, err)
		assert.Equal(t, domain.StageOffer, updated.Stage)

		transitions := activitiesOfType(e.recentActivities(t, 10), domain.ActivityCandidateStageChanged)
		require.Len(t, transitions, 1)
	})
}

func TestListCandidates(t *testing.T) {
	t.Run("Should filter by stage when one is given", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")
		screened := e.createCandidate(t, recruiter.ID, "Alan Turing", "alan@example.com")

		_, err := e.pipelineUC.TransitionCandidateStage(context.Background(), recruiter.ID, screened.ID, domain.StageScreening)
		require.NoError(t, err)

		all, err := e.candidateUC.ListCandidates(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		screening, err := e.candidateUC.ListCandidates(context.Background(), domain.StageScreening)
		require.NoError(t, err)
		require.Len(t, screening, 1)
		assert.Equal(t, "Alan Turing", screening[0].FullName)
	})

	t.Run("Should reject an unknown stage filter", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.candidateUC.ListCandidates(context.Background(), "shortlisted")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid stage")
	})
}

func TestSetProfilePhoto(t *testing.T) {
	t.Run("Should attach the photo URL", func(t *testing.T) {
		e := newEnv(t)
		recruiter := e.registerUser(t, "recruiter1", domain.RoleRecruiter)
		candidate := e.createCandidate(t, recruiter.ID, "Ada Lovelace", "ada@example.com")

		updated, err := e.candidateUC.SetProfilePhoto(context.Background(), candidate.ID, "/uploads/photo.jpg")
		require.NoError(t, err)
		require.NotNil(t, updated.PhotoURL)
		assert.Equal(t, "/uploads/photo.jpg", *updated.PhotoURL)
	})
}

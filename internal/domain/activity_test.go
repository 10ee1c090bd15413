package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
)

func TestNewActivity(t *testing.T) {
	t.Run("Should derive the type from the payload and keep camelCase keys", func(t *testing.T) {
		activity, err := domain.NewActivity(7, domain.CandidateStageChangedDetails{
			CandidateID:   3,
			CandidateName: "Ada Lovelace",
			OldStage:      domain.StageApplied,
			NewStage:      domain.StageScreening,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ActivityCandidateStageChanged, activity.Type)
		assert.Equal(t, int64(7), activity.UserID)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(activity.Details, &raw))
		assert.Equal(t, float64(3), raw["candidateId"])
		assert.Equal(t, "applied", raw["oldStage"])
		assert.Equal(t, "screening", raw["newStage"])
	})
}

func TestDecodeActivityDetails(t *testing.T) {
	t.Run("Should round-trip every payload variant", func(t *testing.T) {
		payloads := []domain.ActivityDetails{
			domain.JobCreatedDetails{JobID: 1, JobTitle: "Backend Engineer"},
			domain.JobUpdatedDetails{JobID: 1, JobTitle: "Backend Engineer"},
			domain.CandidateCreatedDetails{CandidateID: 2, CandidateName: "Ada"},
			domain.CandidateStageChangedDetails{CandidateID: 2, OldStage: "applied", NewStage: "offer"},
			domain.ApplicationCreatedDetails{ApplicationID: 3, UserID: 4, UserName: "Ada", JobID: 1, JobTitle: "Backend Engineer"},
			domain.ApplicationStatusChangedDetails{ApplicationID: 3, OldStatus: "applied", NewStatus: "hired"},
			domain.UserRegisteredDetails{UserID: 4, Username: "ada", Role: domain.RoleCandidate},
			domain.UserDeletedDetails{UserID: 4, Username: "ada"},
		}

		for _, payload := range payloads {
			activity, err := domain.NewActivity(1, payload)
			require.NoError(t, err)

			decoded, err := domain.DecodeActivityDetails(activity)
			require.NoError(t, err)
			assert.Equal(t, payload.ActivityType(), decoded.ActivityType())
		}
	})

	t.Run("Should fail on an unknown type", func(t *testing.T) {
		activity := &domain.Activity{Type: "job_archived", Details: json.RawMessage(`{}`)}
		_, err := domain.DecodeActivityDetails(activity)
		require.Error(t, err)
	})
}

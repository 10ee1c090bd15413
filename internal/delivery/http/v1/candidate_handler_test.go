package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/internal/delivery/http/middleware"
	v1 "go-recruitment-tracker/internal/delivery/http/v1"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/internal/repository/memory"
	"go-recruitment-tracker/internal/usecase"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/logger"
)

type candidateAPI struct {
	router      *gin.Engine
	tokens      *auth.TokenIssuer
	candidateUC domain.CandidateUsecase
}

// newCandidateAPI runs the candidate routes over the in-memory store with
// the real auth middleware, so role gates behave as in production.
func newCandidateAPI(t *testing.T) *candidateAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	store := memory.NewStore()
	validate := validator.New()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	pipelineUC := usecase.NewPipelineUsecase(
		store.Candidates(), store.Applications(), store.Jobs(),
		store.Users(), store.Activities(), store)
	candidateUC := usecase.NewCandidateUsecase(
		store.Candidates(), store.Activities(), pipelineUC, store, validate)

	cfg := &config.Config{UploadDir: t.TempDir(), MaxUploadMB: 5}

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokens))
	v1.NewCandidateHandler(protected, candidateUC, pipelineUC, cfg)

	return &candidateAPI{router: router, tokens: tokens, candidateUC: candidateUC}
}

func (a *candidateAPI) patchJSON(t *testing.T, path string, userID int64, role string, body any) *httptest.ResponseRecorder {
	t.Helper()

	token, err := a.tokens.Issue(userID, role)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPatch, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *candidateAPI) seedCandidate(t *testing.T) *domain.Candidate {
	t.Helper()

	candidate := &domain.Candidate{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Skills:   []string{"Go"},
	}
	require.NoError(t, a.candidateUC.CreateCandidate(context.Background(), 1, candidate))
	return candidate
}

func TestCandidateUpdateStageGate(t *testing.T) {
	t.Run("Should refuse a stage change from a candidate account", func(t *testing.T) {
		api := newCandidateAPI(t)
		candidate := api.seedCandidate(t)

		w := api.patchJSON(t, fmt.Sprintf("/api/candidates/%d", candidate.ID),
			2, domain.RoleCandidate, gin.H{"stage": domain.StageInterview})
		assert.Equal(t, http.StatusForbidden, w.Code)

		got, err := api.candidateUC.GetCandidate(context.Background(), candidate.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StageApplied, got.Stage)
	})

	t.Run("Should let a candidate account update its own notes", func(t *testing.T) {
		api := newCandidateAPI(t)
		candidate := api.seedCandidate(t)

		w := api.patchJSON(t, fmt.Sprintf("/api/candidates/%d", candidate.ID),
			2, domain.RoleCandidate, gin.H{"notes": "Call back on Friday"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should let a recruiter change stage through the general update", func(t *testing.T) {
		api := newCandidateAPI(t)
		candidate := api.seedCandidate(t)

		w := api.patchJSON(t, fmt.Sprintf("/api/candidates/%d", candidate.ID),
			2, domain.RoleRecruiter, gin.H{"stage": domain.StageInterview})
		assert.Equal(t, http.StatusOK, w.Code)

		got, err := api.candidateUC.GetCandidate(context.Background(), candidate.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StageInterview, got.Stage)
	})

	t.Run("Should gate the dedicated stage route the same way", func(t *testing.T) {
		api := newCandidateAPI(t)
		candidate := api.seedCandidate(t)

		w := api.patchJSON(t, fmt.Sprintf("/api/candidates/%d/stage", candidate.ID),
			2, domain.RoleCandidate, gin.H{"stage": domain.StageInterview})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

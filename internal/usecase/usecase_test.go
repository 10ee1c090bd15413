package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/internal/repository/memory"
	"go-recruitment-tracker/internal/usecase"
	"go-recruitment-tracker/pkg/auth"
)

// env wires every usecase over a fresh in-memory store, the same way main
// does over postgres.
type env struct {
	store       *memory.Store
	authUC      domain.AuthUsecase
	jobUC       domain.JobUsecase
	candidateUC domain.CandidateUsecase
	appUC       domain.ApplicationUsecase
	interviewUC domain.InterviewUsecase
	activityUC  domain.ActivityUsecase
	statsUC     domain.StatsUsecase
	adminUC     domain.AdminUsecase
	pipelineUC  domain.PipelineUsecase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := memory.NewStore()
	validate := validator.New()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	users := store.Users()
	jobs := store.Jobs()
	candidates := store.Candidates()
	applications := store.Applications()
	interviews := store.Interviews()
	activities := store.Activities()

	pipelineUC := usecase.NewPipelineUsecase(candidates, applications, jobs, users, activities, store)
	return &env{
		store:       store,
		authUC:      usecase.NewAuthUsecase(users, activities, tokens, store, validate),
		jobUC:       usecase.NewJobUsecase(jobs, activities, store, validate),
		candidateUC: usecase.NewCandidateUsecase(candidates, activities, pipelineUC, store, validate),
		appUC:       usecase.NewApplicationUsecase(applications, jobs, users, activities, store, validate),
		interviewUC: usecase.NewInterviewUsecase(interviews, applications, jobs, users, activities, store, validate),
		activityUC:  usecase.NewActivityUsecase(activities),
		statsUC:     usecase.NewStatsUsecase(jobs, candidates, applications, interviews),
		adminUC:     usecase.NewAdminUsecase(users, jobs, candidates, applications, interviews, activities, store),
		pipelineUC:  pipelineUC,
	}
}

// registerUser creates an account through the auth usecase and returns it.
func (e *env) registerUser(t *testing.T, username, role string) *domain.User {
	t.Helper()

	user, token, err := e.authUC.Register(context.Background(), domain.RegisterInput{
		Username: username,
		Password: "secret-password",
		FullName: "Test " + username,
		Email:    username + "@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

func (e *env) createJob(t *testing.T, actorID int64, title string) *domain.Job {
	t.Helper()

	job := &domain.Job{
		Title:       title,
		Description: "Build and run backend services",
		Location:    "Remote",
	}
	require.NoError(t, e.jobUC.CreateJob(context.Background(), actorID, job))
	return job
}

func (e *env) createCandidate(t *testing.T, actorID int64, name, email string) *domain.Candidate {
	t.Helper()

	candidate := &domain.Candidate{
		FullName: name,
		Email:    email,
		Skills:   []string{"Go", "SQL"},
	}
	require.NoError(t, e.candidateUC.CreateCandidate(context.Background(), actorID, candidate))
	return candidate
}

func (e *env) apply(t *testing.T, applicantID, jobID int64) *domain.Application {
	t.Helper()

	app := &domain.Application{JobID: jobID}
	require.NoError(t, e.appUC.CreateApplication(context.Background(), applicantID, app))
	return app
}

// recentActivities fetches the audit log newest-first.
func (e *env) recentActivities(t *testing.T, limit int) []domain.Activity {
	t.Helper()

	activities, err := e.activityUC.RecentActivities(context.Background(), limit)
	require.NoError(t, err)
	return activities
}

// activitiesOfType filters the recent log down to one activity type.
func activitiesOfType(activities []domain.Activity, activityType string) []domain.Activity {
	var out []domain.Activity
	for _, a := range activities {
		if a.Type == activityType {
			out = append(out, a)
		}
	}
	return out
}

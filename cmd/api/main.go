package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-recruitment-tracker/config"
	_ "go-recruitment-tracker/docs" // Important for Swagger
	v1 "go-recruitment-tracker/internal/delivery/http/v1"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/internal/repository/memory"
	"go-recruitment-tracker/internal/repository/postgres"
	"go-recruitment-tracker/internal/usecase"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/database"
	"go-recruitment-tracker/pkg/logger"
)

type repositories struct {
	users        domain.UserRepository
	jobs         domain.JobRepository
	candidates   domain.CandidateRepository
	applications domain.ApplicationRepository
	interviews   domain.InterviewRepository
	activities   domain.ActivityRepository
	tx           domain.TxManager
}

// @title           Recruitment Tracker API
// @version         1.0
// @description     Recruitment tracking backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment tracker", "port", cfg.Port, "storage", cfg.StorageDriver)

	// 3. Setup Storage
	repos, cleanup, err := buildRepositories(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up storage", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// 4. Setup UseCases
	validate := validator.New()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	pipelineUC := usecase.NewPipelineUsecase(repos.candidates, repos.applications, repos.jobs, repos.users, repos.activities, repos.tx)
	authUC := usecase.NewAuthUsecase(repos.users, repos.activities, tokens, repos.tx, validate)
	jobUC := usecase.NewJobUsecase(repos.jobs, repos.activities, repos.tx, validate)
	candidateUC := usecase.NewCandidateUsecase(repos.candidates, repos.activities, pipelineUC, repos.tx, validate)
	applicationUC := usecase.NewApplicationUsecase(repos.applications, repos.jobs, repos.users, repos.activities, repos.tx, validate)
	interviewUC := usecase.NewInterviewUsecase(repos.interviews, repos.applications, repos.jobs, repos.users, repos.activities, repos.tx, validate)
	activityUC := usecase.NewActivityUsecase(repos.activities)
	statsUC := usecase.NewStatsUsecase(repos.jobs, repos.candidates, repos.applications, repos.interviews)
	adminUC := usecase.NewAdminUsecase(repos.users, repos.jobs, repos.candidates, repos.applications, repos.interviews, repos.activities, repos.tx)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		ActivityUC:    activityUC,
		StatsUC:       statsUC,
		AdminUC:       adminUC,
		PipelineUC:    pipelineUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// buildRepositories wires the configured storage driver. The memory driver
// exists for local runs and demos without a database.
func buildRepositories(cfg *config.Config) (*repositories, func(), error) {
	if cfg.StorageDriver == "memory" {
		store := memory.NewStore()
		return &repositories{
			users:        store.Users(),
			jobs:         store.Jobs(),
			candidates:   store.Candidates(),
			applications: store.Applications(),
			interviews:   store.Interviews(),
			activities:   store.Activities(),
			tx:           store,
		}, func() {}, nil
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	return &repositories{
		users:        postgres.NewUserRepository(pool),
		jobs:         postgres.NewJobRepository(pool),
		candidates:   postgres.NewCandidateRepository(pool),
		applications: postgres.NewApplicationRepository(pool),
		interviews:   postgres.NewInterviewRepository(pool),
		activities:   postgres.NewActivityRepository(pool),
		tx:           postgres.NewTxManager(pool),
	}, pool.Close, nil
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/auth"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CandidateUC   domain.CandidateUsecase
	ApplicationUC domain.ApplicationUsecase
	InterviewUC   domain.InterviewUsecase
	ActivityUC    domain.ActivityUsecase
	StatsUC       domain.StatsUsecase
	AdminUC       domain.AdminUsecase
	PipelineUC    domain.PipelineUsecase
	Tokens        *auth.TokenIssuer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Uploaded resumes and photos
	r.Static("/uploads", deps.Config.UploadDir)

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(api, protected, deps.AuthUC, deps.Config)
		NewJobHandler(api, protected, deps.JobUC)
		NewCandidateHandler(protected, deps.CandidateUC, deps.PipelineUC, deps.Config)
		NewApplicationHandler(protected, deps.ApplicationUC, deps.PipelineUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewActivityHandler(protected, deps.ActivityUC)
		NewStatsHandler(protected, deps.StatsUC)
		NewAdminHandler(protected, deps.AdminUC, deps.ActivityUC)
	}

	return r
}

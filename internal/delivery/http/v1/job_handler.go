package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Job listings are readable without a session
	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/recent", handler.Recent)
		jobs.GET("/:id", handler.GetDetails)
	}

	// Mutations are limited to recruiters and admins
	writers := protected.Group("/jobs")
	writers.Use(middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin))
	{
		writers.POST("", handler.Create)
		writers.PATCH("/:id", handler.Update)
	}
}

type CreateJobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Salary       *string `json:"salary"`
	Requirements *string `json:"requirements"`
	Status       string  `json:"status"`
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a job posting (recruiter or admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	job := &domain.Job{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: req.Requirements,
		Status:       req.Status,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), actorID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Apply a partial update to a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int              true  "Job ID"
// @Param        job  body      domain.JobPatch  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	job, err := h.jobUC.UpdateJob(c.Request.Context(), actorID, id, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// List godoc
// @Summary      List jobs
// @Description  Get all jobs, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// Recent godoc
// @Summary      List recent jobs
// @Description  Get the most recently posted jobs
// @Tags         jobs
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 5)"
// @Success      200    {object}  response.Response
// @Router       /jobs/recent [get]
// @Security     BearerAuth
func (h *JobHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	jobs, err := h.jobUC.RecentJobs(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recent jobs", jobs)
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get a single job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// pathID parses the :id path parameter shared by most handlers.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}

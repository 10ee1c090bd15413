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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	pipelineUC    domain.PipelineUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, pipelineUC domain.PipelineUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC, pipelineUC: pipelineUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Create)
		applications.GET("", handler.List)
		applications.GET("/:id", handler.GetDetails)
	}

	writers := applications.Group("")
	writers.Use(middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin))
	{
		writers.PATCH("/:id/status", handler.ChangeStatus)
	}
}

type CreateApplicationRequest struct {
	JobID       int64   `json:"job_id"`
	CoverLetter *string `json:"cover_letter"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create godoc
// @Summary      Apply to a job
// @Description  File an application for the authenticated user
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      CreateApplicationRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	app := &domain.Application{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
	}

	if err := h.applicationUC.CreateApplication(c.Request.Context(), actorID, app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// List godoc
// @Summary      List applications
// @Description  Get applications filtered by exactly one of job_id, user_id, or status
// @Tags         applications
// @Produce      json
// @Param        job_id   query     int     false  "Filter by job"
// @Param        user_id  query     int     false  "Filter by applicant"
// @Param        status   query     string  false  "Filter by status"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	jobID := c.Query("job_id")
	userID := c.Query("user_id")
	status := c.Query("status")

	filters := 0
	for _, f := range []string{jobID, userID, status} {
		if f != "" {
			filters++
		}
	}
	if filters != 1 {
		c.Error(apperror.BadRequest("Provide exactly one of job_id, user_id, or status"))
		return
	}

	var (
		apps []domain.Application
		err  error
	)
	switch {
	case jobID != "":
		var id int64
		id, err = strconv.ParseInt(jobID, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job_id"))
			return
		}
		apps, err = h.applicationUC.ListByJob(c.Request.Context(), id)
	case userID != "":
		var id int64
		id, err = strconv.ParseInt(userID, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid user_id"))
			return
		}
		apps, err = h.applicationUC.ListByUser(c.Request.Context(), id)
	default:
		apps, err = h.applicationUC.ListByStatus(c.Request.Context(), status)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", apps)
}

// GetDetails godoc
// @Summary      Get application details
// @Description  Get a single application by ID
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// ChangeStatus godoc
// @Summary      Change an application's status
// @Description  Move the application through the pipeline and record the transition
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      ChangeStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) ChangeStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.pipelineUC.TransitionApplicationStatus(c.Request.Context(), actorID, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

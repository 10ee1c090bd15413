package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/interviews")
	{
		interviews.GET("", handler.List)
	}

	writers := interviews.Group("")
	writers.Use(middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin))
	{
		writers.POST("", handler.Schedule)
		writers.PATCH("/:id", handler.Update)
	}
}

type ScheduleInterviewRequest struct {
	ApplicationID int64     `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Duration      int       `json:"duration"`
	Location      *string   `json:"location"`
	Notes         *string   `json:"notes"`
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Create an interview against an application (recruiter or admin only)
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      ScheduleInterviewRequest  true  "Interview JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	interview := &domain.Interview{
		ApplicationID: req.ApplicationID,
		ScheduledAt:   req.ScheduledAt,
		Duration:      req.Duration,
		Location:      req.Location,
		Notes:         req.Notes,
	}

	if err := h.interviewUC.ScheduleInterview(c.Request.Context(), actorID, interview); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", interview)
}

// Update godoc
// @Summary      Update an interview
// @Description  Apply a partial update; a status change is recorded as a transition
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id         path      int                    true  "Interview ID"
// @Param        interview  body      domain.InterviewPatch  true  "Fields to update"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /interviews/{id} [patch]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.InterviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	interview, err := h.interviewUC.UpdateInterview(c.Request.Context(), actorID, id, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", interview)
}

// List godoc
// @Summary      List interviews
// @Description  Get interviews for an application, or upcoming ones with upcoming=true
// @Tags         interviews
// @Produce      json
// @Param        application_id  query     int     false  "Application ID"
// @Param        upcoming        query     bool    false  "Future interviews still in scheduled status, soonest first"
// @Param        limit           query     int     false  "Max results with upcoming=true (default 10)"
// @Success      200             {object}  response.Response
// @Failure      400             {object}  response.Response
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	if c.Query("upcoming") == "true" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		interviews, err := h.interviewUC.UpcomingInterviews(c.Request.Context(), limit)
		if err != nil {
			c.Error(err)
			return
		}

		response.Success(c, http.StatusOK, "Upcoming interviews", interviews)
		return
	}

	applicationID, err := strconv.ParseInt(c.Query("application_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Provide application_id or upcoming=true"))
		return
	}

	interviews, err := h.interviewUC.ListByApplication(c.Request.Context(), applicationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview list", interviews)
}

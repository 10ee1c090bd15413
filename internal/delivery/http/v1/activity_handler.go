package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
)

type ActivityHandler struct {
	activityUC domain.ActivityUsecase
}

func NewActivityHandler(protected *gin.RouterGroup, activityUC domain.ActivityUsecase) {
	handler := &ActivityHandler{activityUC: activityUC}

	protected.GET("/activities", handler.Recent)
}

// Recent godoc
// @Summary      List recent activity
// @Description  Get the most recent audit records, newest first
// @Tags         activities
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 10, max 100)"
// @Success      200    {object}  response.Response
// @Router       /activities [get]
// @Security     BearerAuth
func (h *ActivityHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	activities, err := h.activityUC.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recent activity", activities)
}

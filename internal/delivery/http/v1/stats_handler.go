package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

func NewStatsHandler(protected *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}

	protected.GET("/dashboard/stats", handler.Dashboard)
	protected.GET("/pipeline/stats", handler.Pipeline)
}

// Dashboard godoc
// @Summary      Dashboard statistics
// @Description  Get active job, new candidate, scheduled interview, and hire rate numbers
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsUC.DashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// Pipeline godoc
// @Summary      Pipeline statistics
// @Description  Get application counts per funnel stage
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /pipeline/stats [get]
// @Security     BearerAuth
func (h *StatsHandler) Pipeline(c *gin.Context) {
	stats, err := h.statsUC.PipelineStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pipeline stats", stats)
}

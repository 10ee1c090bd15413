package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
)

type AdminHandler struct {
	adminUC    domain.AdminUsecase
	activityUC domain.ActivityUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, activityUC domain.ActivityUsecase) {
	handler := &AdminHandler{adminUC: adminUC, activityUC: activityUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/users", handler.ListUsers)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.GET("/activities", handler.ListActivities)
	}
}

// ListUsers godoc
// @Summary      List users
// @Description  Get all user accounts (admin only)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", users)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Remove a user and everything it owns (admin only)
// @Tags         admin
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	if err := h.adminUC.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListActivities godoc
// @Summary      Full activity log
// @Description  Get the audit trail across all users (admin only)
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 50, max 100)"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /admin/activities [get]
// @Security     BearerAuth
func (h *AdminHandler) ListActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activities, err := h.activityUC.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Activity log", activities)
}

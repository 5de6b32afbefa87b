package handler

import (
	"net/http"

	"planner/internal/model"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboard DashboardService
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// DashboardResponse is the dashboard view data.
type DashboardResponse struct {
	*service.Dashboard
	Statuses []model.EventStatus `json:"statuses"`
}

// Show godoc
// @Summary      Dashboard
// @Description  Events of the current user grouped by status, newest date first
// @Tags         Events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  ErrorResponse
// @Router       / [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	d, err := h.dashboard.ListDashboard(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Dashboard: d, Statuses: model.EventStatuses})
}

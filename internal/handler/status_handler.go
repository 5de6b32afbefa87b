package handler

import (
	"errors"
	"net/http"
	"strconv"

	"planner/internal/metrics"
	"planner/internal/repository"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusHandler serves the JSON endpoints used by the dashboard and the event
// page to move events and tasks between statuses.
type StatusHandler struct {
	events  EventService
	tasks   TaskService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewStatusHandler(events EventService, tasks TaskService, m *metrics.Metrics, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{events: events, tasks: tasks, metrics: m, logger: logger}
}

type UpdateEventStatusRequest struct {
	EventID   uint   `json:"event_id"`
	NewStatus string `json:"new_status"`
}

type UpdateTaskStatusRequest struct {
	TaskID    uint   `json:"task_id"`
	NewStatus string `json:"new_status"`
}

// StatusResponse is the body of every status endpoint reply.
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// UpdateEventStatus godoc
// @Summary      Change event status
// @Description  Moves an owned event to any of the four statuses
// @Tags         Events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateEventStatusRequest  true  "Event and target status"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  StatusResponse
// @Failure      404      {object}  StatusResponse
// @Failure      405      {object}  StatusResponse
// @Router       /update-status [post]
func (h *StatusHandler) UpdateEventStatus(c *gin.Context) {
	if !requirePost(c) {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Error: err.Error()})
		return
	}

	event, err := h.events.SetEventStatus(c.Request.Context(), req.EventID, user, req.NewStatus)
	if err != nil {
		h.respondStatusError(c, err, repository.ErrEventNotFound, "Event not found")
		return
	}

	h.metrics.ObserveEventStatus(string(event.Status))
	c.JSON(http.StatusOK, StatusResponse{Success: true})
}

// UpdateTaskStatus godoc
// @Summary      Change task status
// @Description  Sets the status of a task that belongs to one of the caller's events. The task id may come from the body or the path.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateTaskStatusRequest  true  "Task and target status"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  StatusResponse
// @Failure      404      {object}  StatusResponse
// @Failure      405      {object}  StatusResponse
// @Router       /update-task-status [post]
// @Router       /task/{task_id}/update-status [post]
func (h *StatusHandler) UpdateTaskStatus(c *gin.Context) {
	if !requirePost(c) {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Error: err.Error()})
		return
	}
	// On /task/:task_id/update-status the path names the task.
	if raw := c.Param("task_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, StatusResponse{Error: "Invalid task id"})
			return
		}
		req.TaskID = uint(id)
	}

	task, err := h.tasks.SetTaskStatus(c.Request.Context(), req.TaskID, user, req.NewStatus)
	if err != nil {
		h.respondStatusError(c, err, repository.ErrTaskNotFound, "Task not found")
		return
	}

	h.metrics.ObserveTaskStatus(string(task.Status))
	c.JSON(http.StatusOK, StatusResponse{Success: true})
}

func (h *StatusHandler) respondStatusError(c *gin.Context, err, notFound error, notFoundMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, notFound):
		c.JSON(http.StatusNotFound, StatusResponse{Error: notFoundMsg})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, StatusResponse{Error: verr.Error()})
	default:
		h.logger.Warn("status update failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, StatusResponse{Error: err.Error()})
	}
}

func requirePost(c *gin.Context) bool {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, StatusResponse{Error: "Invalid request method"})
		return false
	}
	return true
}

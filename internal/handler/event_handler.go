package handler

import (
	"net/http"

	"planner/internal/model"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	events EventService
	logger *zap.Logger
}

func NewEventHandler(events EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{events: events, logger: logger}
}

// EventRequest is the event form. Values stay strings so the service layer
// owns parsing and its error messages.
type EventRequest struct {
	Name              string `form:"name" json:"name"`
	Description       string `form:"description" json:"description"`
	Date              string `form:"date" json:"date"`
	Time              string `form:"time" json:"time"`
	Location          string `form:"location" json:"location"`
	Priority          string `form:"priority" json:"priority"`
	Budget            string `form:"budget" json:"budget"`
	ExpectedAttendees string `form:"expected_attendees" json:"expected_attendees"`
}

func (r EventRequest) toInput() service.EventInput {
	return service.EventInput{
		Name:              r.Name,
		Description:       r.Description,
		Date:              r.Date,
		Time:              r.Time,
		Location:          r.Location,
		Priority:          r.Priority,
		Budget:            r.Budget,
		ExpectedAttendees: r.ExpectedAttendees,
	}
}

// EventFormResponse lists the choices offered by the event form.
type EventFormResponse struct {
	Priorities []model.Priority `json:"priorities"`
}

// EventDetailResponse is the event page view data.
type EventDetailResponse struct {
	*service.EventDetail
	EventStatuses []model.EventStatus `json:"event_statuses"`
	TaskStatuses  []model.TaskStatus  `json:"task_statuses"`
}

func (h *EventHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, EventFormResponse{Priorities: model.Priorities})
}

// Create godoc
// @Summary      Create event
// @Tags         Events
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  EventRequest  true  "Event fields"
// @Success      303
// @Failure      400  {object}  ErrorResponse
// @Router       /add-event [post]
func (h *EventHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	event, err := h.events.CreateEvent(c.Request.Context(), user, req.toInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, eventURL(event.ID))
}

// Detail godoc
// @Summary      Event detail
// @Description  Event with its tasks, attendees and notes
// @Tags         Events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  EventDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /event/{id} [get]
func (h *EventHandler) Detail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.events.GetEventDetail(c.Request.Context(), id, user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, EventDetailResponse{
		EventDetail:   detail,
		EventStatuses: model.EventStatuses,
		TaskStatuses:  model.TaskStatuses,
	})
}

func (h *EventHandler) Edit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	if _, err := h.events.UpdateEvent(c.Request.Context(), id, user, req.toInput()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, eventURL(id))
}

func (h *EventHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.events.DeleteEvent(c.Request.Context(), id, user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

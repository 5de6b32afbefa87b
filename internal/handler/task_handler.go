package handler

import (
	"net/http"

	"planner/internal/model"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChildHandler serves the forms that attach tasks, attendees and notes to an
// event.
type ChildHandler struct {
	events    EventService
	tasks     TaskService
	attendees AttendeeService
	notes     NoteService
	logger    *zap.Logger
}

func NewChildHandler(
	events EventService,
	tasks TaskService,
	attendees AttendeeService,
	notes NoteService,
	logger *zap.Logger,
) *ChildHandler {
	return &ChildHandler{
		events:    events,
		tasks:     tasks,
		attendees: attendees,
		notes:     notes,
		logger:    logger,
	}
}

type TaskRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	AssignedTo  string `form:"assigned_to" json:"assigned_to"`
	DueDate     string `form:"due_date" json:"due_date"`
}

type AttendeeRequest struct {
	Name  string `form:"name" json:"name"`
	Email string `form:"email" json:"email"`
	Phone string `form:"phone" json:"phone"`
}

type NoteRequest struct {
	Note string `form:"note" json:"note"`
}

// ChildFormResponse is the view data of the add-task and add-attendee forms.
type ChildFormResponse struct {
	Event        *model.Event       `json:"event"`
	TaskStatuses []model.TaskStatus `json:"task_statuses,omitempty"`
}

// TaskForm shows the add-task form for an owned event.
func (h *ChildHandler) TaskForm(c *gin.Context) {
	h.childForm(c, model.TaskStatuses)
}

// AttendeeForm shows the add-attendee form for an owned event.
func (h *ChildHandler) AttendeeForm(c *gin.Context) {
	h.childForm(c, nil)
}

func (h *ChildHandler) childForm(c *gin.Context, statuses []model.TaskStatus) {
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
	c.JSON(http.StatusOK, ChildFormResponse{Event: detail.Event, TaskStatuses: statuses})
}

// AddTask godoc
// @Summary      Add task
// @Tags         Tasks
// @Accept       x-www-form-urlencoded,json
// @Security     BearerAuth
// @Param        id       path  int          true  "Event ID"
// @Param        request  body  TaskRequest  true  "Task fields"
// @Success      303
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /event/{id}/add-task [post]
func (h *ChildHandler) AddTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	_, err := h.tasks.AddTask(c.Request.Context(), id, user, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, eventURL(id))
}

// AddAttendee godoc
// @Summary      Add attendee
// @Description  New attendees start with RSVP status Pending
// @Tags         Attendees
// @Accept       x-www-form-urlencoded,json
// @Security     BearerAuth
// @Param        id       path  int              true  "Event ID"
// @Param        request  body  AttendeeRequest  true  "Attendee fields"
// @Success      303
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /event/{id}/add-attendee [post]
func (h *ChildHandler) AddAttendee(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AttendeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	_, err := h.attendees.AddAttendee(c.Request.Context(), id, user, service.AttendeeInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, eventURL(id))
}

func (h *ChildHandler) AddNote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	if _, err := h.notes.AddNote(c.Request.Context(), id, user, req.Note); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, eventURL(id))
}

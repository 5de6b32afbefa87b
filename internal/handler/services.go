package handler

import (
	"context"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/service"
)

// The interfaces below are the slices of the service layer each handler needs.

type EventService interface {
	CreateEvent(ctx context.Context, owner auth.Identity, in service.EventInput) (*model.Event, error)
	GetEventDetail(ctx context.Context, eventID uint, owner auth.Identity) (*service.EventDetail, error)
	SetEventStatus(ctx context.Context, eventID uint, owner auth.Identity, newStatus string) (*model.Event, error)
	UpdateEvent(ctx context.Context, eventID uint, owner auth.Identity, in service.EventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, eventID uint, owner auth.Identity) error
}

type TaskService interface {
	AddTask(ctx context.Context, eventID uint, owner auth.Identity, in service.TaskInput) (*model.Task, error)
	SetTaskStatus(ctx context.Context, taskID uint, owner auth.Identity, newStatus string) (*model.Task, error)
}

type AttendeeService interface {
	AddAttendee(ctx context.Context, eventID uint, owner auth.Identity, in service.AttendeeInput) (*model.Attendee, error)
}

type NoteService interface {
	AddNote(ctx context.Context, eventID uint, owner auth.Identity, note string) (*model.EventNote, error)
}

type DashboardService interface {
	ListDashboard(ctx context.Context, owner auth.Identity) (*service.Dashboard, error)
}

type AccountService interface {
	Register(ctx context.Context, in service.RegisterInput) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

var (
	_ EventService     = (*service.EventService)(nil)
	_ TaskService      = (*service.TaskService)(nil)
	_ AttendeeService  = (*service.AttendeeService)(nil)
	_ NoteService      = (*service.NoteService)(nil)
	_ DashboardService = (*service.DashboardService)(nil)
	_ AccountService   = (*service.AccountService)(nil)
)

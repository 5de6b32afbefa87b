package service

import (
	"context"
	"fmt"
	"strings"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/repository"
)

type AttendeeInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=254"`
	Phone string `json:"phone" validate:"max=20"`
}

type AttendeeService struct {
	guard     *Guard
	attendees *repository.AttendeeRepository
}

func NewAttendeeService(guard *Guard, attendees *repository.AttendeeRepository) *AttendeeService {
	return &AttendeeService{guard: guard, attendees: attendees}
}

// AddAttendee validates before writing, so a rejected attendee leaves no row.
// New attendees always start as Pending.
func (s *AttendeeService) AddAttendee(ctx context.Context, eventID uint, owner auth.Identity, in AttendeeInput) (*model.Attendee, error) {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	attendee := &model.Attendee{
		EventID:    event.ID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		RSVPStatus: model.RSVPPending,
	}
	if err := s.attendees.Create(ctx, attendee); err != nil {
		return nil, fmt.Errorf("create attendee: %w", err)
	}
	return attendee, nil
}

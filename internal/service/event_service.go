package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"

	budgetMaxDigits        = 10
	budgetMaxDecimalPlaces = 2
)

// EventInput carries the raw form values of an event submission.
type EventInput struct {
	Name              string `json:"name" validate:"required,max=200"`
	Description       string `json:"description"`
	Date              string `json:"date" validate:"required"`
	Time              string `json:"time"`
	Location          string `json:"location" validate:"max=300"`
	Priority          string `json:"priority"`
	Budget            string `json:"budget"`
	ExpectedAttendees string `json:"expected_attendees"`
}

// EventDetail is an event with its children, each in default order.
type EventDetail struct {
	Event     *model.Event      `json:"event"`
	Tasks     []model.Task      `json:"tasks"`
	Attendees []model.Attendee  `json:"attendees"`
	Notes     []model.EventNote `json:"notes"`
}

type EventService struct {
	guard     *Guard
	events    *repository.EventRepository
	tasks     *repository.TaskRepository
	attendees *repository.AttendeeRepository
	notes     *repository.NoteRepository
	logger    *zap.Logger
}

func NewEventService(
	guard *Guard,
	events *repository.EventRepository,
	tasks *repository.TaskRepository,
	attendees *repository.AttendeeRepository,
	notes *repository.NoteRepository,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		guard:     guard,
		events:    events,
		tasks:     tasks,
		attendees: attendees,
		notes:     notes,
		logger:    logger,
	}
}

// CreateEvent validates in and stores the event in a single insert, budget included.
func (s *EventService) CreateEvent(ctx context.Context, owner auth.Identity, in EventInput) (*model.Event, error) {
	event := &model.Event{
		UserID: owner.UserID,
		Status: model.EventStatusPlanning,
	}
	if err := applyEventInput(event, in); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		zap.Uint("event_id", event.ID),
		zap.Uint("user_id", owner.UserID))
	return event, nil
}

func (s *EventService) GetEventDetail(ctx context.Context, eventID uint, owner auth.Identity) (*EventDetail, error) {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	attendees, err := s.attendees.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	notes, err := s.notes.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return &EventDetail{
		Event:     event,
		Tasks:     tasks,
		Attendees: attendees,
		Notes:     notes,
	}, nil
}

// SetEventStatus moves an event to any of the four buckets regardless of its
// current status.
func (s *EventService) SetEventStatus(ctx context.Context, eventID uint, owner auth.Identity, newStatus string) (*model.Event, error) {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	status, err := model.ParseEventStatus(newStatus)
	if err != nil {
		return nil, &ValidationError{Field: "new_status", Message: err.Error()}
	}

	if err := s.events.UpdateStatus(ctx, event, status); err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}
	return event, nil
}

// UpdateEvent replaces the editable fields of an owned event.
func (s *EventService) UpdateEvent(ctx context.Context, eventID uint, owner auth.Identity, in EventInput) (*model.Event, error) {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}
	if err := applyEventInput(event, in); err != nil {
		return nil, err
	}
	if err := s.events.UpdateDetails(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an owned event and everything attached to it.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uint, owner auth.Identity) error {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, event.ID, owner.UserID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		zap.Uint("event_id", event.ID),
		zap.Uint("user_id", owner.UserID))
	return nil
}

func applyEventInput(event *model.Event, in EventInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Date = strings.TrimSpace(in.Date)
	if err := validateStruct(in); err != nil {
		return err
	}

	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return invalid("date", "enter a valid date (YYYY-MM-DD)")
	}

	clock, err := parseClock(in.Time)
	if err != nil {
		return err
	}

	expected, err := parseExpectedAttendees(in.ExpectedAttendees)
	if err != nil {
		return err
	}

	budget, err := parseBudget(in.Budget)
	if err != nil {
		return err
	}

	priority := model.PriorityMedium
	if p := strings.TrimSpace(in.Priority); p != "" {
		priority, err = model.ParsePriority(p)
		if err != nil {
			return &ValidationError{Field: "priority", Message: err.Error()}
		}
	}

	event.Name = in.Name
	event.Description = in.Description
	event.Date = date
	event.Time = clock
	event.Location = strings.TrimSpace(in.Location)
	event.Priority = priority
	event.Budget = budget
	event.ExpectedAttendees = expected
	return nil
}

// parseClock accepts HH:MM or HH:MM:SS and stores HH:MM:SS. Blank means no time.
func parseClock(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			clock := t.Format("15:04:05")
			return &clock, nil
		}
	}
	return nil, invalid("time", "enter a valid time (HH:MM)")
}

func parseExpectedAttendees(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("expected_attendees", "enter a whole number")
	}
	if n < 0 {
		return 0, invalid("expected_attendees", "ensure this value is greater than or equal to 0")
	}
	return n, nil
}

// parseBudget enforces numeric(10,2): at most 10 digits in total, 2 of them
// after the decimal point.
func parseBudget(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, invalid("budget", "enter a number")
	}

	coefficient := d.Coefficient()
	digitCount := len(coefficient.Abs(coefficient).String())
	exp := int(d.Exponent())

	var digits, decimals int
	switch {
	case exp >= 0:
		digits = digitCount + exp
		if d.IsZero() {
			digits = 1
		}
	case -exp > digitCount:
		digits, decimals = -exp, -exp
	default:
		digits, decimals = digitCount, -exp
	}

	if digits > budgetMaxDigits {
		return decimal.NullDecimal{}, invalid("budget", "ensure that there are no more than %d digits in total", budgetMaxDigits)
	}
	if decimals > budgetMaxDecimalPlaces {
		return decimal.NullDecimal{}, invalid("budget", "ensure that there are no more than %d decimal places", budgetMaxDecimalPlaces)
	}
	if whole := digits - decimals; whole > budgetMaxDigits-budgetMaxDecimalPlaces {
		return decimal.NullDecimal{}, invalid("budget", "ensure that there are no more than %d digits before the decimal point", budgetMaxDigits-budgetMaxDecimalPlaces)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

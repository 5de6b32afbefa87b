package service

import (
	"context"
	"fmt"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/repository"
)

// Dashboard groups a user's events into the four status buckets.
type Dashboard struct {
	Planning   []model.Event `json:"planning"`
	InProgress []model.Event `json:"in_progress"`
	Completed  []model.Event `json:"completed"`
	Cancelled  []model.Event `json:"cancelled"`

	Total           int `json:"total"`
	PlanningCount   int `json:"planning_count"`
	InProgressCount int `json:"in_progress_count"`
	CompletedCount  int `json:"completed_count"`
	CancelledCount  int `json:"cancelled_count"`
}

type DashboardService struct {
	events *repository.EventRepository
}

func NewDashboardService(events *repository.EventRepository) *DashboardService {
	return &DashboardService{events: events}
}

func (s *DashboardService) ListDashboard(ctx context.Context, owner auth.Identity) (*Dashboard, error) {
	events, err := s.events.ListByOwner(ctx, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return buildDashboard(events), nil
}

func buildDashboard(events []model.Event) *Dashboard {
	d := &Dashboard{
		Planning:   []model.Event{},
		InProgress: []model.Event{},
		Completed:  []model.Event{},
		Cancelled:  []model.Event{},
	}
	for _, e := range events {
		switch e.Status {
		case model.EventStatusPlanning:
			d.Planning = append(d.Planning, e)
		case model.EventStatusInProgress:
			d.InProgress = append(d.InProgress, e)
		case model.EventStatusCompleted:
			d.Completed = append(d.Completed, e)
		case model.EventStatusCancelled:
			d.Cancelled = append(d.Cancelled, e)
		}
	}

	d.PlanningCount = len(d.Planning)
	d.InProgressCount = len(d.InProgress)
	d.CompletedCount = len(d.Completed)
	d.CancelledCount = len(d.Cancelled)
	d.Total = d.PlanningCount + d.InProgressCount + d.CompletedCount + d.CancelledCount
	return d
}

package service

import (
	"context"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/repository"
)

// Guard resolves event ownership. Every event-scoped operation goes through
// LoadOwnedEvent before reading or mutating anything under the event.
type Guard struct {
	events *repository.EventRepository
}

func NewGuard(events *repository.EventRepository) *Guard {
	return &Guard{events: events}
}

// LoadOwnedEvent returns repository.ErrEventNotFound both for a missing event
// and for an event owned by someone else.
func (g *Guard) LoadOwnedEvent(ctx context.Context, eventID uint, user auth.Identity) (*model.Event, error) {
	return g.events.GetOwned(ctx, eventID, user.UserID)
}

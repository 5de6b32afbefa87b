package service

import (
	"context"
	"testing"

	"planner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_OwnerCanLoad(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	got, err := env.guard.LoadOwnedEvent(context.Background(), e.ID, env.alice)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestGuard_OtherUserGetsNotFound(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	_, errOther := env.guard.LoadOwnedEvent(context.Background(), e.ID, env.bob)
	_, errMissing := env.guard.LoadOwnedEvent(context.Background(), e.ID+100, env.bob)

	// Not owned and not existing are reported identically.
	assert.ErrorIs(t, errOther, repository.ErrEventNotFound)
	assert.ErrorIs(t, errMissing, repository.ErrEventNotFound)
	assert.Equal(t, errMissing.Error(), errOther.Error())
}

func TestGuard_AppliesToEveryEventScopedOperation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	_, err := env.events.GetEventDetail(ctx, e.ID, env.bob)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	_, err = env.events.SetEventStatus(ctx, e.ID, env.bob, "Completed")
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	_, err = env.events.UpdateEvent(ctx, e.ID, env.bob, EventInput{Name: "Hijack", Date: "2025-06-02"})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	err = env.events.DeleteEvent(ctx, e.ID, env.bob)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	_, err = env.tasks.AddTask(ctx, e.ID, env.bob, TaskInput{Title: "t"})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	_, err = env.attendees.AddAttendee(ctx, e.ID, env.bob, AttendeeInput{Name: "n", Email: "n@example.com"})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	_, err = env.notes.AddNote(ctx, e.ID, env.bob, "hello")
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	// Nothing changed for the owner.
	detail, err := env.events.GetEventDetail(ctx, e.ID, env.alice)
	require.NoError(t, err)
	assert.Equal(t, "Launch", detail.Event.Name)
	assert.Empty(t, detail.Tasks)
	assert.Empty(t, detail.Attendees)
	assert.Empty(t, detail.Notes)
}

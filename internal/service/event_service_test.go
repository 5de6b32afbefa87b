package service

import (
	"context"
	"testing"
	"time"

	"planner/internal/model"
	"planner/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent_LaunchScenario(t *testing.T) {
	env := newTestEnv(t)

	e, err := env.events.CreateEvent(context.Background(), env.alice, EventInput{
		Name:              "Launch",
		Date:              "2025-06-01",
		ExpectedAttendees: "",
	})
	require.NoError(t, err)
	assert.NotZero(t, e.ID)

	var stored model.Event
	require.NoError(t, env.db.First(&stored, e.ID).Error)
	assert.Equal(t, 0, stored.ExpectedAttendees)
	assert.Equal(t, model.EventStatusPlanning, stored.Status)
	assert.Equal(t, model.PriorityMedium, stored.Priority)
	assert.Equal(t, env.alice.UserID, stored.UserID)
	assert.Nil(t, stored.Time)
	assert.False(t, stored.Budget.Valid)
	assert.Equal(t, "2025-06-01", stored.Date.Format("2006-01-02"))
}

func TestCreateEvent_AllFields(t *testing.T) {
	env := newTestEnv(t)

	e, err := env.events.CreateEvent(context.Background(), env.alice, EventInput{
		Name:              "  Gala  ",
		Description:       "Annual dinner",
		Date:              "2025-12-12",
		Time:              "19:30",
		Location:          "Town hall",
		Priority:          "High",
		Budget:            "1500.50",
		ExpectedAttendees: "120",
	})
	require.NoError(t, err)

	var stored model.Event
	require.NoError(t, env.db.First(&stored, e.ID).Error)
	assert.Equal(t, "Gala", stored.Name)
	require.NotNil(t, stored.Time)
	assert.Equal(t, "19:30:00", *stored.Time)
	assert.Equal(t, model.PriorityHigh, stored.Priority)
	assert.Equal(t, 120, stored.ExpectedAttendees)
	require.True(t, stored.Budget.Valid)
	assert.True(t, stored.Budget.Decimal.Equal(decimal.RequireFromString("1500.5")))
}

func TestCreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    EventInput
		field string
	}{
		{"missing name", EventInput{Date: "2025-06-01"}, "name"},
		{"missing date", EventInput{Name: "x"}, "date"},
		{"unparseable date", EventInput{Name: "x", Date: "06/01/2025"}, "date"},
		{"bad time", EventInput{Name: "x", Date: "2025-06-01", Time: "7pm"}, "time"},
		{"negative attendees", EventInput{Name: "x", Date: "2025-06-01", ExpectedAttendees: "-1"}, "expected_attendees"},
		{"non-numeric attendees", EventInput{Name: "x", Date: "2025-06-01", ExpectedAttendees: "many"}, "expected_attendees"},
		{"budget not a number", EventInput{Name: "x", Date: "2025-06-01", Budget: "cheap"}, "budget"},
		{"budget three decimals", EventInput{Name: "x", Date: "2025-06-01", Budget: "10.125"}, "budget"},
		{"budget too many digits", EventInput{Name: "x", Date: "2025-06-01", Budget: "123456789.00"}, "budget"},
		{"unknown priority", EventInput{Name: "x", Date: "2025-06-01", Priority: "Urgent"}, "priority"},
	}

	env := newTestEnv(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.events.CreateEvent(context.Background(), env.alice, tt.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	var count int64
	env.db.Model(&model.Event{}).Count(&count)
	assert.Zero(t, count, "rejected events must not be stored")
}

func TestParseBudget(t *testing.T) {
	valid := []string{"0", "0.5", "12345678.99", "99999999", "1e3", "  42.10 "}
	for _, s := range valid {
		b, err := parseBudget(s)
		assert.NoError(t, err, s)
		assert.True(t, b.Valid, s)
	}

	invalidValues := []string{"123456789", "1.999", "0.001", "abc", "12345678.991"}
	for _, s := range invalidValues {
		_, err := parseBudget(s)
		assert.Error(t, err, s)
	}

	b, err := parseBudget("")
	assert.NoError(t, err)
	assert.False(t, b.Valid)
}

func TestSetEventStatus_AnyToAny(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	for _, from := range model.EventStatuses {
		for _, to := range model.EventStatuses {
			_, err := env.events.SetEventStatus(ctx, e.ID, env.alice, string(from))
			require.NoError(t, err)

			got, err := env.events.SetEventStatus(ctx, e.ID, env.alice, string(to))
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got.Status)

			var stored model.Event
			require.NoError(t, env.db.First(&stored, e.ID).Error)
			assert.Equal(t, to, stored.Status)
		}
	}
}

func TestSetEventStatus_TouchesUpdatedAt(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")
	before := e.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	got, err := env.events.SetEventStatus(context.Background(), e.ID, env.alice, "Completed")
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestSetEventStatus_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	for _, s := range []string{"", "Done", "planning", "To Do"} {
		_, err := env.events.SetEventStatus(context.Background(), e.ID, env.alice, s)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, s)
	}

	var stored model.Event
	require.NoError(t, env.db.First(&stored, e.ID).Error)
	assert.Equal(t, model.EventStatusPlanning, stored.Status)
}

func TestSetEventStatus_NotFoundBeforeValidation(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	_, err := env.events.SetEventStatus(context.Background(), e.ID, env.bob, "Bogus")
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestUpdateEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")
	_, err := env.events.SetEventStatus(ctx, e.ID, env.alice, "In Progress")
	require.NoError(t, err)

	updated, err := env.events.UpdateEvent(ctx, e.ID, env.alice, EventInput{
		Name:     "Launch v2",
		Date:     "2025-07-01",
		Priority: "Low",
		Budget:   "99.99",
	})
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", updated.Name)

	var stored model.Event
	require.NoError(t, env.db.First(&stored, e.ID).Error)
	assert.Equal(t, "Launch v2", stored.Name)
	assert.Equal(t, "2025-07-01", stored.Date.Format("2006-01-02"))
	assert.Equal(t, model.PriorityLow, stored.Priority)
	assert.Equal(t, model.EventStatusInProgress, stored.Status, "editing must not change status")
	require.True(t, stored.Budget.Valid)
	assert.True(t, stored.Budget.Decimal.Equal(decimal.RequireFromString("99.99")))
}

func TestDeleteEvent_Cascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doomed := env.createEvent(t, env.alice, "Doomed", "2025-06-01")
	kept := env.createEvent(t, env.alice, "Kept", "2025-06-02")

	for _, e := range []*model.Event{doomed, kept} {
		_, err := env.tasks.AddTask(ctx, e.ID, env.alice, TaskInput{Title: "Book venue"})
		require.NoError(t, err)
		_, err = env.attendees.AddAttendee(ctx, e.ID, env.alice, AttendeeInput{Name: "Ann", Email: "ann@example.com"})
		require.NoError(t, err)
		_, err = env.notes.AddNote(ctx, e.ID, env.alice, "remember the cake")
		require.NoError(t, err)
	}

	require.NoError(t, env.events.DeleteEvent(ctx, doomed.ID, env.alice))

	_, err := env.events.GetEventDetail(ctx, doomed.ID, env.alice)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	for _, m := range []interface{}{&model.Task{}, &model.Attendee{}, &model.EventNote{}} {
		var orphaned int64
		require.NoError(t, env.db.Model(m).Where("event_id = ?", doomed.ID).Count(&orphaned).Error)
		assert.Zero(t, orphaned, "%T rows left behind", m)

		var survivors int64
		require.NoError(t, env.db.Model(m).Where("event_id = ?", kept.ID).Count(&survivors).Error)
		assert.Equal(t, int64(1), survivors, "%T of other event removed", m)
	}
}

func TestGetEventDetail_DefaultOrdering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	for _, in := range []TaskInput{
		{Title: "undated"},
		{Title: "early", DueDate: "2025-05-01"},
		{Title: "late", DueDate: "2025-05-20"},
	} {
		_, err := env.tasks.AddTask(ctx, e.ID, env.alice, in)
		require.NoError(t, err)
	}
	for _, name := range []string{"First", "Second"} {
		_, err := env.attendees.AddAttendee(ctx, e.ID, env.alice, AttendeeInput{Name: name, Email: "x@example.com"})
		require.NoError(t, err)
	}
	for _, text := range []string{"older", "newer"} {
		_, err := env.notes.AddNote(ctx, e.ID, env.alice, text)
		require.NoError(t, err)
	}

	detail, err := env.events.GetEventDetail(ctx, e.ID, env.alice)
	require.NoError(t, err)

	require.Len(t, detail.Tasks, 3)
	assert.Equal(t, "late", detail.Tasks[0].Title)
	assert.Equal(t, "early", detail.Tasks[1].Title)
	assert.Equal(t, "undated", detail.Tasks[2].Title, "tasks without a due date sort last")

	require.Len(t, detail.Attendees, 2)
	assert.Equal(t, "First", detail.Attendees[0].Name)

	require.Len(t, detail.Notes, 2)
	assert.Equal(t, "newer", detail.Notes[0].Note)
}

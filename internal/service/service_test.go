package service

import (
	"context"
	"testing"

	"planner/internal/auth"
	"planner/internal/database"
	"planner/internal/model"
	"planner/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	guard     *Guard
	events    *EventService
	tasks     *TaskService
	attendees *AttendeeService
	notes     *NoteService
	dashboard *DashboardService
	accounts  *AccountService

	alice auth.Identity
	bob   auth.Identity
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, database.Migrate(db))

	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	userRepo := repository.NewUserRepository(db)

	logger := zap.NewNop()
	guard := NewGuard(eventRepo)
	env := &testEnv{
		db:        db,
		guard:     guard,
		events:    NewEventService(guard, eventRepo, taskRepo, attendeeRepo, noteRepo, logger),
		tasks:     NewTaskService(guard, taskRepo),
		attendees: NewAttendeeService(guard, attendeeRepo),
		notes:     NewNoteService(guard, noteRepo),
		dashboard: NewDashboardService(eventRepo),
		accounts:  NewAccountService(userRepo, logger),
	}

	env.alice = createUser(t, userRepo, "alice")
	env.bob = createUser(t, userRepo, "bob")
	return env
}

func createUser(t *testing.T, repo *repository.UserRepository, username string) auth.Identity {
	t.Helper()
	u := &model.User{Username: username, HashedPassword: "x"}
	require.NoError(t, repo.Create(context.Background(), u))
	return auth.Identity{UserID: u.ID, Username: u.Username}
}

func (env *testEnv) createEvent(t *testing.T, owner auth.Identity, name, date string) *model.Event {
	t.Helper()
	e, err := env.events.CreateEvent(context.Background(), owner, EventInput{Name: name, Date: date})
	require.NoError(t, err)
	return e
}

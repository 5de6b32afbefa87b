package database

import (
	"io"
	"testing"

	"planner/internal/config"
	"planner/internal/model"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(db))

	for _, m := range []interface{}{&model.User{}, &model.Event{}, &model.Task{}, &model.Attendee{}, &model.EventNote{}} {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}
	// Migrating twice is a no-op.
	assert.NoError(t, Migrate(db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.EqualError(t, err, `unsupported DB_DRIVER "oracle"`)
}

func TestMigrationSource(t *testing.T) {
	src, err := iofs.New(migrationFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, _, err := src.ReadUp(first)
	require.NoError(t, err)
	up.Close()
	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	down.Close()
}

func TestVersionedMigrationsNeedPostgres(t *testing.T) {
	db, err := OpenSQLite(":memory:", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, MigrateUp(db), ErrVersionedUnsupported)
	assert.ErrorIs(t, MigrateDown(db, 1), ErrVersionedUnsupported)
	_, _, err = MigrationVersion(db)
	assert.ErrorIs(t, err, ErrVersionedUnsupported)
}

func TestUsernameUniqueIgnoringCase(t *testing.T) {
	db, err := OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&model.User{Username: "alice", HashedPassword: "x"}).Error)
	assert.Error(t, db.Create(&model.User{Username: "Alice", HashedPassword: "x"}).Error)
	assert.NoError(t, db.Create(&model.User{Username: "bob", HashedPassword: "x"}).Error)
}

func TestInitMigrationIndexesLowerUsername(t *testing.T) {
	f, err := migrationFS.Open("migrations/000001_init.up.sql")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ON users (LOWER(username))")
}

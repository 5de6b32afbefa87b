package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrVersionedUnsupported is returned by the versioned migration commands on
// drivers other than postgres.
var ErrVersionedUnsupported = errors.New("versioned migrations require DB_DRIVER=postgres")

// withMigrator runs fn against a migrator bound to one pooled connection.
// Closing the migrator releases that connection and leaves the pool open.
func withMigrator(db *gorm.DB, fn func(m *migrate.Migrate) error) error {
	if db.Dialector.Name() != "postgres" {
		return ErrVersionedUnsupported
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql pool: %w", err)
	}

	ctx := context.Background()
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		driver.Close()
		return fmt.Errorf("open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer m.Close()

	return fn(m)
}

// MigrateUp applies every pending migration.
func MigrateUp(db *gorm.DB) error {
	return withMigrator(db, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		return nil
	})
}

// MigrateDown reverts steps migrations, or all of them when steps is 0.
func MigrateDown(db *gorm.DB, steps int) error {
	return withMigrator(db, func(m *migrate.Migrate) error {
		var err error
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		return nil
	})
}

// MigrationVersion reports the applied version and whether the last run failed
// halfway.
func MigrationVersion(db *gorm.DB) (version uint, dirty bool, err error) {
	err = withMigrator(db, func(m *migrate.Migrate) error {
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			version, dirty, err = 0, false, nil
		}
		return err
	})
	return version, dirty, err
}

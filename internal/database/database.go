// Package database opens the relational store and applies schema migrations
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/baristadrill/backend/internal/config"
	"github.com/baristadrill/backend/migrations"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const migrationsTable = "barista_schema_migrations"

// sqlitePragmas configures SQLite for a single local writer
var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
}

// Connect opens and verifies a connection to the configured database
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.Database.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		// One connection keeps the pragmas in effect and serializes writers
		db.SetMaxOpenConns(1)
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, err
		}
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func applyPragmas(db *sql.DB) error {
	for _, p := range sqlitePragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

// RunMigrations applies all pending migrations of the given driver
func RunMigrations(db *sql.DB, driver string) error {
	m, err := newMigrate(db, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// MigrationVersion returns the current schema version and whether it is dirty
func MigrationVersion(db *sql.DB, driver string) (uint, bool, error) {
	m, err := newMigrate(db, driver)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, nil
}

// Optimize refreshes query planner statistics and, for SQLite, truncates the write-ahead log
func Optimize(ctx context.Context, db *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case config.DriverSQLite:
		statements = []string{"PRAGMA optimize", "PRAGMA wal_checkpoint(TRUNCATE)"}
	case config.DriverMySQL:
		statements = []string{"ANALYZE TABLE attempts, progress, weak_items, session_orders"}
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}

	for _, stmt := range statements {
		rows, err := db.QueryContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to run %q: %w", stmt, err)
		}
		rows.Close()
	}
	return nil
}

func newMigrate(db *sql.DB, driver string) (*migrate.Migrate, error) {
	var (
		instance database.Driver
		err      error
	)
	switch driver {
	case config.DriverSQLite:
		instance, err = sqlite.WithInstance(db, &sqlite.Config{MigrationsTable: migrationsTable})
	case config.DriverMySQL:
		instance, err = mysql.WithInstance(db, &mysql.Config{MigrationsTable: migrationsTable})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	files, err := migrations.FS(driver)
	if err != nil {
		return nil, err
	}
	source, err := iofs.New(files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// Migrate applies every pending migration for the dialect. It reports whether
// anything changed.
func (db *DB) Migrate() (bool, error) {
	src, err := iofs.New(migrations, "migrations/"+string(db.Dialect))
	if err != nil {
		return false, fmt.Errorf("loading migrations: %w", err)
	}

	var driver database.Driver
	switch db.Dialect {
	case Postgres:
		driver, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case SQLite:
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		err = fmt.Errorf("unsupported dialect %q", db.Dialect)
	}
	if err != nil {
		return false, fmt.Errorf("migration driver: %w", err)
	}

	// Not closed: closing the migrator would close the shared *sql.DB.
	m, err := migrate.NewWithInstance("iofs", src, string(db.Dialect), driver)
	if err != nil {
		return false, fmt.Errorf("migration init: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("migration up: %w", err)
	}
	return true, nil
}

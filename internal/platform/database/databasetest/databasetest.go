// Package databasetest opens migrated SQLite databases for repository tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/logger"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
)

// Open returns a fresh, migrated database in the test's temp dir.
func Open(t testing.TB) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{
		Driver: database.SQLite,
		URL:    filepath.Join(t.TempDir(), "restauris.db"),
	}, logger.Discard())
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// InsertPatient adds a bare patient row so foreign keys are satisfied.
func InsertPatient(t testing.TB, db *database.DB, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.ExecContext(context.Background(),
		db.Rebind(`INSERT INTO patients (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`),
		id, name, now, now)
	if err != nil {
		t.Fatalf("inserting patient: %v", err)
	}
	return id
}

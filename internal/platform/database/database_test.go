package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomestre7/restauris-2.0-app/internal/logger"
)

func TestRebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = $1 AND b = $2 OR c = $10"

	pg := &DB{Dialect: Postgres}
	assert.Equal(t, q, pg.Rebind(q))

	lite := &DB{Dialect: SQLite}
	assert.Equal(t, "SELECT * FROM t WHERE a = ?1 AND b = ?2 OR c = ?10", lite.Rebind(q))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "mysql"}, logger.Discard())
	assert.Error(t, err)
}

func TestOpenSQLite_MigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{
		Driver:      SQLite,
		URL:         filepath.Join(t.TempDir(), "restauris.db"),
		MaxAttempts: 3,
		RetryDelay:  10 * time.Millisecond,
	}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	changed, err := db.Migrate()
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = db.Migrate()
	require.NoError(t, err)
	assert.False(t, changed)

	for _, table := range []string{"patients", "patient_phases", "assessments"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{Driver: SQLite, URL: filepath.Join(t.TempDir(), "u.db")}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, "CREATE TABLE u (k TEXT PRIMARY KEY, a INTEGER, b INTEGER, UNIQUE (a, b))")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, db.Rebind("INSERT INTO u (k, a, b) VALUES ($1, $2, $3)"), "x", 1, 1)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, db.Rebind("INSERT INTO u (k, a, b) VALUES ($1, $2, $3)"), "y", 1, 1)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.ExecContext(ctx, db.Rebind("INSERT INTO u (k, a, b) VALUES ($1, $2, $3)"), "x", 2, 2)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsForeignKeyViolation_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{Driver: SQLite, URL: filepath.Join(t.TempDir(), "fk.db")}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Migrate()
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, db.Rebind(`INSERT INTO patient_phases (id, patient_id, phase_number, sequence, phase_start_date)
		VALUES ($1, $2, 1, 1, $3)`), "ph-1", "missing-patient", time.Now().UTC())
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_pragma=foreign_keys(1)", sqliteDSN("app.db"))
	assert.Equal(t, "file:app.db?mode=rwc&_pragma=foreign_keys(1)", sqliteDSN("file:app.db?mode=rwc"))
	assert.Equal(t, "app.db?_pragma=foreign_keys(0)", sqliteDSN("app.db?_pragma=foreign_keys(0)"))
}

func TestOpenSQLite_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{Driver: SQLite, URL: filepath.Join(t.TempDir(), "pool.db")}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// No idle connections: each query below runs on a freshly opened one.
	db.SetMaxIdleConns(0)
	for i := 0; i < 3; i++ {
		var on int
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on))
		assert.Equal(t, 1, on, "connection %d", i)
	}
}

// Package database opens the SQL store shared by the repositories and keeps
// its schema current. Postgres is the production target; SQLite serves local
// runs and the repository tests.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

type Config struct {
	Driver      Dialect
	URL         string
	MaxAttempts int
	RetryDelay  time.Duration
}

// DB is a *sql.DB that knows which dialect it speaks. Queries are written
// with $N placeholders and passed through Rebind.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects and pings, retrying while the server comes up.
func Open(ctx context.Context, cfg Config, logger *log.Logger) (*DB, error) {
	if cfg.Driver != Postgres && cfg.Driver != SQLite {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	dsn := cfg.URL
	if cfg.Driver == SQLite {
		dsn = sqliteDSN(dsn)
	}
	db, err := sql.Open(string(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == SQLite {
		// One writer at a time.
		db.SetMaxOpenConns(1)
	}

	for i := 1; i <= attempts; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		if i == attempts {
			break
		}
		logger.Warn("waiting for database", "attempt", i, "of", attempts, "error", err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.RetryDelay):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Driver, err)
	}

	logger.Info("connected to database", "driver", cfg.Driver)
	return &DB{DB: db, Dialect: cfg.Driver}, nil
}

// sqliteDSN turns on foreign keys through the DSN so that every connection
// the pool opens enforces them, not only the first one.
func sqliteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}

var placeholder = regexp.MustCompile(`\$(\d+)`)

// Rebind rewrites $N placeholders into the dialect's form.
func (db *DB) Rebind(query string) string {
	if db.Dialect == SQLite {
		return placeholder.ReplaceAllString(query, "?$1")
	}
	return query
}

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// Extended result codes disabled: fall back to the message.
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}
	return false
}

// IsForeignKeyViolation reports whether err comes from a missing referenced
// row, e.g. a phase written for an unknown patient.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
			strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed")
	}
	return false
}

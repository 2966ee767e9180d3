// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ricardomestre7/restauris-2.0-app/internal/logger"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
)

type Config struct {
	Server   ServerConfig
	Database database.Config
	Log      logger.Config
	Telegram TelegramConfig

	// Locale selects recommendation and report language.
	Locale string
	// CatalogPath points at a YAML question catalog; empty means the
	// built-in one.
	CatalogPath string
	FontPath    string
}

type ServerConfig struct {
	Port       string
	CORSOrigin string
}

type TelegramConfig struct {
	BotToken        string
	TherapistChatID int64
}

// Enabled reports whether reports can be pushed to Telegram.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.TherapistChatID != 0
}

const defaultSQLitePath = "restauris.db"

// Load reads files (default ".env") into the environment, without
// overriding variables already set, and builds the config. Missing files
// are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8080"),
			CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "*"),
		},
		Log: logger.Config{
			Level:  os.Getenv("LOG_LEVEL"),
			File:   os.Getenv("LOG_FILE"),
			Format: os.Getenv("LOG_FORMAT"),
		},
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		Locale:      getEnvOrDefault("LOCALE", recommendation.LocaleEnglish),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		FontPath:    os.Getenv("FONT_PATH"),
	}

	db, err := loadDatabase()
	if err != nil {
		return nil, err
	}
	cfg.Database = db

	if raw := os.Getenv("THERAPIST_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("THERAPIST_CHAT_ID: %w", err)
		}
		cfg.Telegram.TherapistChatID = id
	}

	if _, err := recommendation.TemplatesFor(cfg.Locale); err != nil {
		return nil, fmt.Errorf("LOCALE: %w", err)
	}
	return cfg, nil
}

// loadDatabase picks the driver from DATABASE_DRIVER, or from the shape of
// DATABASE_URL when the driver is not given. With neither set a local SQLite
// file is used.
func loadDatabase() (database.Config, error) {
	cfg := database.Config{
		URL:         os.Getenv("DATABASE_URL"),
		MaxAttempts: 10,
		RetryDelay:  2 * time.Second,
	}

	switch driver := strings.ToLower(os.Getenv("DATABASE_DRIVER")); driver {
	case "postgres", "postgresql":
		cfg.Driver = database.Postgres
	case "sqlite", "sqlite3":
		cfg.Driver = database.SQLite
	case "":
		if strings.HasPrefix(cfg.URL, "postgres://") || strings.HasPrefix(cfg.URL, "postgresql://") {
			cfg.Driver = database.Postgres
		} else {
			cfg.Driver = database.SQLite
		}
	default:
		return cfg, fmt.Errorf("DATABASE_DRIVER: unsupported driver %q", driver)
	}

	if cfg.URL == "" {
		if cfg.Driver == database.Postgres {
			return cfg, errors.New("DATABASE_URL is required for postgres")
		}
		cfg.URL = defaultSQLitePath
	}

	if raw := os.Getenv("DATABASE_MAX_ATTEMPTS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("DATABASE_MAX_ATTEMPTS: %w", err)
		}
		cfg.MaxAttempts = n
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

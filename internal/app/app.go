// Package app wires configuration, storage and the domain services into an
// HTTP router.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ricardomestre7/restauris-2.0-app/internal/assessment"
	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
	"github.com/ricardomestre7/restauris-2.0-app/internal/config"
	"github.com/ricardomestre7/restauris-2.0-app/internal/journal"
	"github.com/ricardomestre7/restauris-2.0-app/internal/patient"
	"github.com/ricardomestre7/restauris-2.0-app/internal/phase"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/telegram"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
	"github.com/ricardomestre7/restauris-2.0-app/internal/report"
)

type App struct {
	DB     *database.DB
	Router http.Handler
}

// LoadCatalog returns the catalog at path, or the built-in one when path is
// empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// New connects to the database, applies migrations and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	changed, err := db.Migrate()
	if err != nil {
		db.Close()
		return nil, err
	}
	if changed {
		logger.Info("migrations applied")
	}

	router, err := NewRouter(db, cfg, clock.System{}, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &App{DB: db, Router: router}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}

// NewRouter builds every service on db and mounts the handlers under /api.
func NewRouter(db *database.DB, cfg *config.Config, clk clock.Clock, logger *log.Logger) (http.Handler, error) {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	engine, err := recommendation.New(cfg.Locale)
	if err != nil {
		return nil, err
	}
	engine = engine.ForCatalog(cat)

	phaseSvc := phase.NewService(phase.NewRepository(db), clk, logger.WithPrefix("phase"))
	patientSvc := patient.NewService(patient.NewRepository(db), phaseSvc, clk, logger.WithPrefix("patient"))
	assessmentSvc := assessment.NewService(assessment.NewRepository(db), cat, engine, patientSvc, clk, logger.WithPrefix("assessment"))
	journalSvc := journal.NewService(journal.NewRepository(db), patientSvc, clk, logger.WithPrefix("journal"))

	deps := report.Deps{
		Assessments: assessmentSvc,
		Patients:    patientSvc,
		Phases:      phaseSvc,
		Renderer:    report.NewPDFRenderer(cfg.Locale, cfg.FontPath),
		Clock:       clk,
		Logger:      logger.WithPrefix("report"),
	}
	if cfg.Telegram.Enabled() {
		deps.Sender = telegram.NewClient(cfg.Telegram.BotToken)
		deps.TherapistChat = cfg.Telegram.TherapistChatID
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN or THERAPIST_CHAT_ID not set, report delivery disabled")
	}
	reportSvc := report.NewService(deps)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(cors(cfg.Server.CORSOrigin))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, fmt.Sprintf("database: %v", err), http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		assessment.RegisterRoutes(r, assessment.NewHandler(assessmentSvc))
		patient.RegisterRoutes(r, patient.NewHandler(patientSvc))
		journal.RegisterRoutes(r, journal.NewHandler(journalSvc))
		phase.RegisterRoutes(r, phase.NewHandler(phaseSvc))
		report.RegisterRoutes(r, report.NewHandler(reportSvc))
	})
	return r, nil
}

func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

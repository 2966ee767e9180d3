package assessment

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

// PatientMarker flags a patient once their first assessment is stored.
type PatientMarker interface {
	MarkAssessed(ctx context.Context, patientID uuid.UUID) error
}

// Overview is everything the results view needs in one call.
type Overview struct {
	Current    *Record    `json:"current"`
	Previous   *Record    `json:"previous"`
	Comparison Comparison `json:"comparison"`
	Evolution  Series     `json:"evolution"`
}

type Service interface {
	Catalog() *catalog.Catalog
	Submit(ctx context.Context, patientID uuid.UUID, answers scoring.Answers) (*Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	History(ctx context.Context, patientID uuid.UUID) ([]Record, error)
	Overview(ctx context.Context, patientID uuid.UUID) (*Overview, error)
}

type service struct {
	repo    Repository
	catalog *catalog.Catalog
	engine  *recommendation.Engine
	marker  PatientMarker
	clock   clock.Clock
	logger  *log.Logger

	score func(*catalog.Catalog, scoring.Answers) scoring.Scores
}

func NewService(repo Repository, cat *catalog.Catalog, engine *recommendation.Engine, marker PatientMarker, clk clock.Clock, logger *log.Logger) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		engine:  engine,
		marker:  marker,
		clock:   clk,
		logger:  logger,
		score:   scoring.Compute,
	}
}

func (s *service) Catalog() *catalog.Catalog { return s.catalog }

// Submit validates, scores and stores one questionnaire. A *scoring.ValidationError
// or *CriticalError means nothing was stored.
func (s *service) Submit(ctx context.Context, patientID uuid.UUID, answers scoring.Answers) (*Record, error) {
	if err := scoring.Validate(s.catalog, answers); err != nil {
		s.logger.Debug("questionnaire rejected", "patient", patientID, "err", err)
		return nil, err
	}

	scores := s.score(s.catalog, answers)
	if !scores.Complete() {
		err := &CriticalError{Scores: scores}
		s.logger.Error("scoring produced incomplete result", "patient", patientID, "scores", scores, "err", err)
		return nil, err
	}

	rec := Record{
		ID:              uuid.New(),
		PatientID:       patientID,
		CreatedAt:       s.clock.Now(),
		Answers:         answers,
		Scores:          scores,
		Recommendations: s.engine.Build(scores, answers),
	}
	if err := s.repo.Append(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info("assessment stored", "patient", patientID, "assessment", rec.ID, "recommendations", len(rec.Recommendations))

	if s.marker != nil {
		if err := s.marker.MarkAssessed(ctx, patientID); err != nil {
			// The record is already stored; the flag is only a listing hint.
			s.logger.Warn("failed to mark patient as assessed", "patient", patientID, "err", err)
		}
	}
	return &rec, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) History(ctx context.Context, patientID uuid.UUID) ([]Record, error) {
	return s.repo.History(ctx, patientID)
}

func (s *service) Overview(ctx context.Context, patientID uuid.UUID) (*Overview, error) {
	history, err := s.repo.History(ctx, patientID)
	if err != nil {
		return nil, err
	}

	current, previous := CurrentAndPrevious(history)
	ov := &Overview{
		Current:    current,
		Previous:   previous,
		Comparison: Compare(current, previous),
		Evolution:  EvolutionSeries(history),
	}
	if current != nil && !current.Valid() {
		s.logger.Warn("latest assessment has incomplete scores", "patient", patientID, "assessment", current.ID)
	}
	return ov, nil
}

// IsValidation reports whether err is a caller-correctable questionnaire error.
func IsValidation(err error) bool {
	var verr *scoring.ValidationError
	return errors.As(err, &verr)
}

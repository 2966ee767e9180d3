package phase

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
)

// Result is the outcome of a transition request. Changed is false when the
// patient was already in the requested phase.
type Result struct {
	State    State  `json:"state"`
	Previous *State `json:"previous,omitempty"`
	Changed  bool   `json:"changed"`
}

type Service interface {
	Initialize(ctx context.Context, patientID uuid.UUID) (*State, error)
	Current(ctx context.Context, patientID uuid.UUID) (*State, error)
	RequestTransition(ctx context.Context, patientID uuid.UUID, target Phase) (*Result, error)
	History(ctx context.Context, patientID uuid.UUID) ([]State, error)
}

type service struct {
	repo   Repository
	clock  clock.Clock
	logger *log.Logger
}

func NewService(repo Repository, clk clock.Clock, logger *log.Logger) Service {
	return &service{repo: repo, clock: clk, logger: logger}
}

// Initialize records phase 1 for a newly registered patient. If a state
// already exists it is returned as is.
func (s *service) Initialize(ctx context.Context, patientID uuid.UUID) (*State, error) {
	st := Initial(patientID, s.clock.Now())
	if err := s.repo.Append(ctx, st); err != nil {
		if errors.Is(err, ErrConflict) {
			return s.repo.Current(ctx, patientID)
		}
		return nil, err
	}
	s.logger.Info("phase initialized", "patient", patientID, "phase", st.Number)
	return &st, nil
}

// Current returns the patient's phase, creating the initial one when the log
// is empty.
func (s *service) Current(ctx context.Context, patientID uuid.UUID) (*State, error) {
	st, err := s.repo.Current(ctx, patientID)
	if errors.Is(err, ErrNotFound) {
		s.logger.Warn("patient has no phase, creating initial state", "patient", patientID)
		return s.Initialize(ctx, patientID)
	}
	return st, err
}

func (s *service) RequestTransition(ctx context.Context, patientID uuid.UUID, target Phase) (*Result, error) {
	if !target.Valid() {
		return nil, ErrInvalidPhase
	}

	current, err := s.Current(ctx, patientID)
	if err != nil {
		return nil, err
	}

	next, changed, err := Transition(*current, target, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		s.logger.Debug("phase unchanged", "patient", patientID, "phase", current.Number)
		return &Result{State: *current, Changed: false}, nil
	}

	if err := s.repo.Append(ctx, next); err != nil {
		return nil, err
	}
	s.logger.Info("phase changed", "patient", patientID, "from", current.Number, "to", next.Number)
	return &Result{State: next, Previous: current, Changed: true}, nil
}

func (s *service) History(ctx context.Context, patientID uuid.UUID) ([]State, error) {
	if _, err := s.Current(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, patientID)
}

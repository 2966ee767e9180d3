package patient

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
	"github.com/ricardomestre7/restauris-2.0-app/internal/phase"
)

// PhaseInitializer starts a new patient's protocol at phase 1.
type PhaseInitializer interface {
	Initialize(ctx context.Context, patientID uuid.UUID) (*phase.State, error)
}

type Registration struct {
	Patient Patient      `json:"patient"`
	Phase   *phase.State `json:"phase,omitempty"`
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Registration, error)
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context) ([]Patient, error)
	MarkAssessed(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, req RegisterRequest) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	phases PhaseInitializer
	clock  clock.Clock
	logger *log.Logger
}

func NewService(repo Repository, phases PhaseInitializer, clk clock.Clock, logger *log.Logger) Service {
	return &service{repo: repo, phases: phases, clock: clk, logger: logger}
}

// Register stores the patient and opens their phase log. A failure to open
// the log is logged but not returned; the phase service creates phase 1
// lazily on first read.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*Registration, error) {
	p, err := req.patient(uuid.New(), s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("patient registered", "patient", p.ID)

	reg := &Registration{Patient: p}
	st, err := s.phases.Initialize(ctx, p.ID)
	if err != nil {
		s.logger.Error("failed to initialize phase", "patient", p.ID, "err", err)
		return reg, nil
	}
	reg.Phase = st
	return reg, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *service) MarkAssessed(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAssessed(ctx, id, s.clock.Now())
}

// Update replaces the patient's intake details with req.
func (s *service) Update(ctx context.Context, id uuid.UUID, req RegisterRequest) (*Patient, error) {
	p, err := req.patient(id, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("patient updated", "patient", id)
	return s.repo.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("patient deleted", "patient", id)
	return nil
}

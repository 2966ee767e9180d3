package journal

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
	"github.com/ricardomestre7/restauris-2.0-app/internal/patient"
)

// PatientSource confirms the patient an entry belongs to.
type PatientSource interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service interface {
	Create(ctx context.Context, patientID uuid.UUID, req Request) (*Entry, error)
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
	List(ctx context.Context, patientID uuid.UUID) ([]Entry, error)
	Update(ctx context.Context, id uuid.UUID, req Request) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	patients PatientSource
	clock    clock.Clock
	logger   *log.Logger
}

func NewService(repo Repository, patients PatientSource, clk clock.Clock, logger *log.Logger) Service {
	return &service{repo: repo, patients: patients, clock: clk, logger: logger}
}

func (s *service) Create(ctx context.Context, patientID uuid.UUID, req Request) (*Entry, error) {
	if err := s.checkPatient(ctx, patientID); err != nil {
		return nil, err
	}
	e, err := req.entry(uuid.New(), patientID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("journal entry saved", "patient", patientID, "entry", e.ID)
	return &e, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, patientID uuid.UUID) ([]Entry, error) {
	if err := s.checkPatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, patientID)
}

// Update replaces the entry's date, ratings and notes with req.
func (s *service) Update(ctx context.Context, id uuid.UUID, req Request) (*Entry, error) {
	old, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := req.entry(id, old.PatientID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	e.CreatedAt = old.CreatedAt
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("journal entry updated", "patient", e.PatientID, "entry", id)
	return &e, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("journal entry deleted", "entry", id)
	return nil
}

func (s *service) checkPatient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.patients.Get(ctx, id); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return ErrNoPatient
		}
		return err
	}
	return nil
}

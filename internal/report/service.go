// Package report renders an assessment as a PDF and delivers it to the
// therapist's Telegram chat.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/assessment"
	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
	"github.com/ricardomestre7/restauris-2.0-app/internal/patient"
	"github.com/ricardomestre7/restauris-2.0-app/internal/phase"
)

// ErrDeliveryDisabled is returned by Send when no bot token or chat is set.
var ErrDeliveryDisabled = errors.New("report delivery is not configured")

type AssessmentSource interface {
	Get(ctx context.Context, id uuid.UUID) (*assessment.Record, error)
	History(ctx context.Context, patientID uuid.UUID) ([]assessment.Record, error)
}

type PatientSource interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type PhaseSource interface {
	Current(ctx context.Context, patientID uuid.UUID) (*phase.State, error)
}

type DocumentSender interface {
	SendDocument(ctx context.Context, chatID int64, data []byte, fileName, caption string) error
}

type Report struct {
	FileName string
	Data     []byte
}

type Service interface {
	Build(ctx context.Context, assessmentID uuid.UUID) (*Report, error)
	Send(ctx context.Context, assessmentID uuid.UUID) error
}

type Deps struct {
	Assessments AssessmentSource
	Patients    PatientSource
	Phases      PhaseSource
	Renderer    Renderer
	// Sender may be nil, in which case Send always fails with
	// ErrDeliveryDisabled.
	Sender        DocumentSender
	TherapistChat int64
	Clock         clock.Clock
	Logger        *log.Logger
}

type service struct {
	Deps
}

func NewService(deps Deps) Service {
	return &service{Deps: deps}
}

func (s *service) Build(ctx context.Context, assessmentID uuid.UUID) (*Report, error) {
	rec, err := s.Assessments.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	p, err := s.Patients.Get(ctx, rec.PatientID)
	if err != nil {
		return nil, err
	}
	history, err := s.Assessments.History(ctx, rec.PatientID)
	if err != nil {
		return nil, err
	}

	doc := Document{
		PatientName: p.Name,
		Record:      *rec,
		Comparison:  assessment.Compare(rec, previousOf(history, *rec)),
		GeneratedAt: s.Clock.Now(),
	}
	if st, err := s.Phases.Current(ctx, rec.PatientID); err != nil {
		s.Logger.Warn("report without phase", "patient", rec.PatientID, "err", err)
	} else {
		doc.Phase = st
	}

	data, err := s.Renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering report for %s: %w", assessmentID, err)
	}
	s.Logger.Debug("report rendered", "assessment", assessmentID, "bytes", len(data))
	return &Report{FileName: fmt.Sprintf("report_%s.pdf", rec.ID), Data: data}, nil
}

func (s *service) Send(ctx context.Context, assessmentID uuid.UUID) error {
	if s.Sender == nil || s.TherapistChat == 0 {
		return ErrDeliveryDisabled
	}

	rep, err := s.Build(ctx, assessmentID)
	if err != nil {
		return err
	}
	caption := fmt.Sprintf("Assessment %s", assessmentID)
	if err := s.Sender.SendDocument(ctx, s.TherapistChat, rep.Data, rep.FileName, caption); err != nil {
		s.Logger.Error("failed to deliver report", "assessment", assessmentID, "err", err)
		return err
	}
	s.Logger.Info("report delivered", "assessment", assessmentID, "chat", s.TherapistChat)
	return nil
}

// previousOf finds the record taken right before rec, regardless of where
// rec sits in the history.
func previousOf(history []assessment.Record, rec assessment.Record) *assessment.Record {
	sorted := append([]assessment.Record(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	for i := range sorted {
		if sorted[i].ID == rec.ID && i+1 < len(sorted) {
			return &sorted[i+1]
		}
	}
	return nil
}

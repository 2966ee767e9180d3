package phase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Phase is a step of the six-phase therapeutic protocol.
type Phase int

const (
	Release Phase = iota + 1
	Regeneration
	Balance
	Vitality
	Integration
	Autonomy
)

const (
	First = Release
	Last  = Autonomy
)

func (p Phase) Valid() bool { return p >= First && p <= Last }

func (p Phase) Label() string {
	switch p {
	case Release:
		return "Release"
	case Regeneration:
		return "Regeneration"
	case Balance:
		return "Balance"
	case Vitality:
		return "Vitality"
	case Integration:
		return "Integration"
	case Autonomy:
		return "Autonomy"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) String() string { return fmt.Sprintf("Phase %d: %s", int(p), p.Label()) }

// State is one entry of a patient's phase log. The entry with the highest
// Sequence is the current phase; older entries are never edited.
type State struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Number    Phase     `json:"phase_number"`
	StartedAt time.Time `json:"phase_start_date"`
	Sequence  int       `json:"sequence"`
}

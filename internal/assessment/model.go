package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

// Record is one scored questionnaire. Records are append-only.
type Record struct {
	ID              uuid.UUID                       `json:"id"`
	PatientID       uuid.UUID                       `json:"patient_id"`
	CreatedAt       time.Time                       `json:"created_at"`
	Answers         scoring.Answers                 `json:"answers"`
	Scores          scoring.Scores                  `json:"scores"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
}

// Valid reports whether the record carries a score for every category, the
// condition for taking part in comparisons and evolution series.
func (r *Record) Valid() bool {
	return r != nil && r.Scores.Complete()
}

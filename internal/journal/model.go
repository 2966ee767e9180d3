package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

var (
	ErrNotFound  = errors.New("journal entry not found")
	ErrNoPatient = errors.New("patient not found")
	ErrInvalid   = errors.New("invalid journal entry")
)

// Ratings are on the same 1..5 scale as questionnaire answers.
const (
	MinRating = 1
	MaxRating = 5
)

const dateLayout = "2006-01-02"

// Entry is one session note kept by the therapist. Ratings are optional.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	EntryDate    time.Time `json:"entry_date"`
	MoodRating   *int      `json:"mood_rating"`
	EnergyLevel  *int      `json:"energy_level"`
	SleepQuality *int      `json:"sleep_quality"`
	Symptoms     string    `json:"symptoms"`
	Insights     string    `json:"insights"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Request creates or replaces an entry. EntryDate is YYYY-MM-DD and defaults
// to the current day.
type Request struct {
	EntryDate    string `json:"entry_date"`
	MoodRating   *int   `json:"mood_rating"`
	EnergyLevel  *int   `json:"energy_level"`
	SleepQuality *int   `json:"sleep_quality"`
	Symptoms     string `json:"symptoms"`
	Insights     string `json:"insights"`
}

func (r Request) entry(id, patientID uuid.UUID, now time.Time) (Entry, error) {
	var result *multierror.Error

	day := now.UTC().Truncate(24 * time.Hour)
	if r.EntryDate != "" {
		d, err := time.Parse(dateLayout, r.EntryDate)
		if err != nil {
			result = multierror.Append(result, errors.New("entry_date must be YYYY-MM-DD"))
		} else {
			day = d
		}
	}
	for _, rating := range [...]struct {
		name  string
		value *int
	}{
		{"mood_rating", r.MoodRating},
		{"energy_level", r.EnergyLevel},
		{"sleep_quality", r.SleepQuality},
	} {
		if rating.value != nil && (*rating.value < MinRating || *rating.value > MaxRating) {
			result = multierror.Append(result, fmt.Errorf("%s must be between %d and %d", rating.name, MinRating, MaxRating))
		}
	}
	if result != nil {
		result.ErrorFormat = joinErrors
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalid, result)
	}

	return Entry{
		ID:           id,
		PatientID:    patientID,
		EntryDate:    day,
		MoodRating:   r.MoodRating,
		EnergyLevel:  r.EnergyLevel,
		SleepQuality: r.SleepQuality,
		Symptoms:     strings.TrimSpace(r.Symptoms),
		Insights:     strings.TrimSpace(r.Insights),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

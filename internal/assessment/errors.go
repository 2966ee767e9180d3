package assessment

import (
	"errors"
	"fmt"

	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

var (
	ErrNotFound  = errors.New("assessment not found")
	ErrNoPatient = errors.New("patient not found")

	// ErrCritical marks a scoring result that cannot be stored: the engine
	// produced an empty or partial score map for a complete questionnaire.
	ErrCritical = errors.New("critical scoring error")
)

type CriticalError struct {
	Scores scoring.Scores
}

func (e *CriticalError) Error() string {
	return fmt.Sprintf("%v: computed %d of 5 category scores", ErrCritical, len(e.Scores))
}

func (e *CriticalError) Unwrap() error { return ErrCritical }

// Package clock is the time source injected into services.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Stepper is a deterministic clock for tests. Every call to Now returns the
// current instant and then advances it by Step.
type Stepper struct {
	mu   sync.Mutex
	at   time.Time
	Step time.Duration
}

func NewStepper(start time.Time, step time.Duration) *Stepper {
	return &Stepper{at: start, Step: step}
}

func (s *Stepper) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.at
	s.at = s.at.Add(s.Step)
	return now
}

// Fixed always returns the same instant.
func Fixed(t time.Time) Clock {
	return NewStepper(t, 0)
}

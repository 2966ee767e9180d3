// Package phase tracks where each patient is in the therapeutic protocol.
package phase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhase = errors.New("phase must be between 1 and 6")
	ErrNotFound     = errors.New("phase not found")
	ErrConflict     = errors.New("phase changed concurrently")
	ErrNoPatient    = errors.New("patient not found")
)

// Initial is the state every patient starts in.
func Initial(patientID uuid.UUID, now time.Time) State {
	return State{
		ID:        uuid.New(),
		PatientID: patientID,
		Number:    First,
		StartedAt: now,
		Sequence:  1,
	}
}

// Transition moves current to target. Asking for the phase the patient is
// already in is a no-op: current comes back unchanged with changed=false.
// Both forward and backward moves are allowed.
func Transition(current State, target Phase, now time.Time) (next State, changed bool, err error) {
	if !target.Valid() {
		return current, false, fmt.Errorf("%w: got %d", ErrInvalidPhase, int(target))
	}
	if target == current.Number {
		return current, false, nil
	}
	return State{
		ID:        uuid.New(),
		PatientID: current.PatientID,
		Number:    target,
		StartedAt: now,
		Sequence:  current.Sequence + 1,
	}, true, nil
}

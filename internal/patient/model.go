package patient

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("patient not found")
	ErrInvalid  = errors.New("invalid patient")
)

const birthDateLayout = "2006-01-02"

type Patient struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Notes         string     `json:"notes"`
	HasAssessment bool       `json:"has_assessment"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// RegisterRequest is the intake form, also used to replace a patient's
// details. BirthDate is optional, as YYYY-MM-DD.
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
}

func (r RegisterRequest) patient(id uuid.UUID, now time.Time) (Patient, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Patient{}, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	p := Patient{
		ID:        id,
		Name:      name,
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		Notes:     r.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if r.BirthDate != "" {
		bd, err := time.Parse(birthDateLayout, r.BirthDate)
		if err != nil {
			return Patient{}, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", ErrInvalid)
		}
		if bd.After(now) {
			return Patient{}, fmt.Errorf("%w: birth_date is in the future", ErrInvalid)
		}
		p.BirthDate = &bd
	}
	return p, nil
}

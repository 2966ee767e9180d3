package phase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
)

type Repository interface {
	// Current returns the latest state or ErrNotFound.
	Current(ctx context.Context, patientID uuid.UUID) (*State, error)
	// Append stores a new state. A state whose sequence already exists for
	// the patient fails with ErrConflict.
	Append(ctx context.Context, s State) error
	// History lists every state, oldest first.
	History(ctx context.Context, patientID uuid.UUID) ([]State, error)
}

type sqlRepo struct {
	db *database.DB
}

func NewRepository(db *database.DB) Repository {
	return &sqlRepo{db: db}
}

const stateColumns = `id, patient_id, phase_number, sequence, phase_start_date`

func (r *sqlRepo) Current(ctx context.Context, patientID uuid.UUID) (*State, error) {
	query := r.db.Rebind(`SELECT ` + stateColumns + ` FROM patient_phases
		WHERE patient_id = $1 ORDER BY sequence DESC LIMIT 1`)

	var s State
	err := r.db.QueryRowContext(ctx, query, patientID).
		Scan(&s.ID, &s.PatientID, &s.Number, &s.Sequence, &s.StartedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading current phase: %w", err)
	}
	s.StartedAt = s.StartedAt.UTC()
	return &s, nil
}

func (r *sqlRepo) Append(ctx context.Context, s State) error {
	query := r.db.Rebind(`INSERT INTO patient_phases (` + stateColumns + `)
		VALUES ($1, $2, $3, $4, $5)`)

	_, err := r.db.ExecContext(ctx, query, s.ID, s.PatientID, int(s.Number), s.Sequence, s.StartedAt.UTC())
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrConflict
		}
		if database.IsForeignKeyViolation(err) {
			return ErrNoPatient
		}
		return fmt.Errorf("saving phase: %w", err)
	}
	return nil
}

func (r *sqlRepo) History(ctx context.Context, patientID uuid.UUID) ([]State, error) {
	query := r.db.Rebind(`SELECT ` + stateColumns + ` FROM patient_phases
		WHERE patient_id = $1 ORDER BY sequence ASC`)

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("loading phase history: %w", err)
	}
	defer rows.Close()

	var out []State
	for rows.Next() {
		var s State
		if err := rows.Scan(&s.ID, &s.PatientID, &s.Number, &s.Sequence, &s.StartedAt); err != nil {
			return nil, err
		}
		s.StartedAt = s.StartedAt.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

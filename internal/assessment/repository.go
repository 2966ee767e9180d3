package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
)

type Repository interface {
	Append(ctx context.Context, rec Record) error
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	// History returns every record of a patient, newest first.
	History(ctx context.Context, patientID uuid.UUID) ([]Record, error)
}

type sqlRepo struct {
	db *database.DB
}

func NewRepository(db *database.DB) Repository {
	return &sqlRepo{db: db}
}

const recordColumns = `id, patient_id, answers, scores, recommendations, created_at`

func (r *sqlRepo) Append(ctx context.Context, rec Record) error {
	answersJSON, err := json.Marshal(rec.Answers)
	if err != nil {
		return err
	}
	scoresJSON, err := json.Marshal(rec.Scores)
	if err != nil {
		return err
	}
	recsJSON, err := json.Marshal(rec.Recommendations)
	if err != nil {
		return err
	}

	query := r.db.Rebind(`INSERT INTO assessments (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.PatientID,
		string(answersJSON), string(scoresJSON), string(recsJSON),
		rec.CreatedAt.UTC())
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrNoPatient
		}
		return fmt.Errorf("saving assessment: %w", err)
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := r.db.Rebind(`SELECT ` + recordColumns + ` FROM assessments WHERE id = $1`)

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading assessment: %w", err)
	}
	return rec, nil
}

func (r *sqlRepo) History(ctx context.Context, patientID uuid.UUID) ([]Record, error) {
	query := r.db.Rebind(`SELECT ` + recordColumns + ` FROM assessments
		WHERE patient_id = $1 ORDER BY created_at DESC, id`)

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("loading assessments: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec                       Record
		answers, scores, recsJSON string
	)
	if err := row.Scan(&rec.ID, &rec.PatientID, &answers, &scores, &recsJSON, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers of %s: %w", rec.ID, err)
	}
	// A stored record may hold a partial or null score map; it is loaded as
	// is and filtered by Valid.
	if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
		return nil, fmt.Errorf("decoding scores of %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(recsJSON), &rec.Recommendations); err != nil {
		return nil, fmt.Errorf("decoding recommendations of %s: %w", rec.ID, err)
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

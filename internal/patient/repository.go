package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
)

type Repository interface {
	Create(ctx context.Context, p Patient) error
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context) ([]Patient, error)
	MarkAssessed(ctx context.Context, id uuid.UUID, at time.Time) error
	Update(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sqlRepo struct {
	db *database.DB
}

func NewRepository(db *database.DB) Repository {
	return &sqlRepo{db: db}
}

const patientColumns = `id, name, email, phone, birth_date, notes, has_assessment, created_at, updated_at`

func (r *sqlRepo) Create(ctx context.Context, p Patient) error {
	var birth sql.NullTime
	if p.BirthDate != nil {
		birth = sql.NullTime{Time: p.BirthDate.UTC(), Valid: true}
	}

	query := r.db.Rebind(`INSERT INTO patients (` + patientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Email, p.Phone, birth, p.Notes, p.HasAssessment,
		p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving patient: %w", err)
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	query := r.db.Rebind(`SELECT ` + patientColumns + ` FROM patients WHERE id = $1`)

	p, err := scanPatient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading patient: %w", err)
	}
	return p, nil
}

func (r *sqlRepo) List(ctx context.Context) ([]Patient, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY name, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	defer rows.Close()

	var out []Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *sqlRepo) MarkAssessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := r.db.Rebind(`UPDATE patients SET has_assessment = $1, updated_at = $2 WHERE id = $3`)

	res, err := r.db.ExecContext(ctx, query, true, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("marking patient assessed: %w", err)
	}
	return affectedOne(res)
}

// Update rewrites the intake fields. has_assessment and created_at are kept.
func (r *sqlRepo) Update(ctx context.Context, p Patient) error {
	var birth sql.NullTime
	if p.BirthDate != nil {
		birth = sql.NullTime{Time: p.BirthDate.UTC(), Valid: true}
	}

	query := r.db.Rebind(`UPDATE patients
		SET name = $1, email = $2, phone = $3, birth_date = $4, notes = $5, updated_at = $6
		WHERE id = $7`)
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Email, p.Phone, birth, p.Notes, p.UpdatedAt.UTC(), p.ID)
	if err != nil {
		return fmt.Errorf("updating patient: %w", err)
	}
	return affectedOne(res)
}

// Delete removes the patient; phases, assessments and journal entries go with
// it through ON DELETE CASCADE.
func (r *sqlRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM patients WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("deleting patient: %w", err)
	}
	return affectedOne(res)
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPatient(row scanner) (*Patient, error) {
	var (
		p     Patient
		birth sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &birth, &p.Notes,
		&p.HasAssessment, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if birth.Valid {
		bd := birth.Time.UTC()
		p.BirthDate = &bd
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
	// List returns a patient's entries, latest entry date first.
	List(ctx context.Context, patientID uuid.UUID) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sqlRepo struct {
	db *database.DB
}

func NewRepository(db *database.DB) Repository {
	return &sqlRepo{db: db}
}

const entryColumns = `id, patient_id, entry_date, mood_rating, energy_level, sleep_quality, symptoms, insights, created_at, updated_at`

func (r *sqlRepo) Create(ctx context.Context, e Entry) error {
	query := r.db.Rebind(`INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.PatientID, e.EntryDate.UTC(),
		nullRating(e.MoodRating), nullRating(e.EnergyLevel), nullRating(e.SleepQuality),
		e.Symptoms, e.Insights, e.CreatedAt.UTC(), e.UpdatedAt.UTC())
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrNoPatient
		}
		return fmt.Errorf("saving journal entry: %w", err)
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	query := r.db.Rebind(`SELECT ` + entryColumns + ` FROM journal_entries WHERE id = $1`)

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading journal entry: %w", err)
	}
	return e, nil
}

func (r *sqlRepo) List(ctx context.Context, patientID uuid.UUID) ([]Entry, error) {
	query := r.db.Rebind(`SELECT ` + entryColumns + ` FROM journal_entries
		WHERE patient_id = $1 ORDER BY entry_date DESC, created_at DESC`)

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update rewrites the editable fields. patient_id and created_at are kept.
func (r *sqlRepo) Update(ctx context.Context, e Entry) error {
	query := r.db.Rebind(`UPDATE journal_entries
		SET entry_date = $1, mood_rating = $2, energy_level = $3, sleep_quality = $4,
			symptoms = $5, insights = $6, updated_at = $7
		WHERE id = $8`)
	res, err := r.db.ExecContext(ctx, query,
		e.EntryDate.UTC(),
		nullRating(e.MoodRating), nullRating(e.EnergyLevel), nullRating(e.SleepQuality),
		e.Symptoms, e.Insights, e.UpdatedAt.UTC(), e.ID)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}
	return affectedOne(res)
}

func (r *sqlRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM journal_entries WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
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

func nullRating(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func ratingOf(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		e                   Entry
		mood, energy, sleep sql.NullInt64
	)
	err := row.Scan(&e.ID, &e.PatientID, &e.EntryDate, &mood, &energy, &sleep,
		&e.Symptoms, &e.Insights, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.MoodRating = ratingOf(mood)
	e.EnergyLevel = ratingOf(energy)
	e.SleepQuality = ratingOf(sleep)
	e.EntryDate = e.EntryDate.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

package phase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database/databasetest"
)

func TestSQLRepository_AppendCurrentHistory(t *testing.T) {
	db := databasetest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()
	pid := databasetest.InsertPatient(t, db, "Ana")

	_, err := repo.Current(ctx, pid)
	assert.ErrorIs(t, err, ErrNotFound)

	first := Initial(pid, t0)
	require.NoError(t, repo.Append(ctx, first))
	second, _, err := Transition(first, Vitality, t0.Add(24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, second))

	cur, err := repo.Current(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, second.ID, cur.ID)
	assert.Equal(t, Vitality, cur.Number)
	assert.Equal(t, 2, cur.Sequence)
	assert.True(t, second.StartedAt.Equal(cur.StartedAt))

	hist, err := repo.History(ctx, pid)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, first.ID, hist[0].ID)
	assert.Equal(t, second.ID, hist[1].ID)
}

func TestSQLRepository_DuplicateSequenceConflicts(t *testing.T) {
	db := databasetest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()
	pid := databasetest.InsertPatient(t, db, "Bia")

	base := Initial(pid, t0)
	require.NoError(t, repo.Append(ctx, base))

	a, _, _ := Transition(base, Balance, t0)
	b, _, _ := Transition(base, Autonomy, t0)
	require.NoError(t, repo.Append(ctx, a))
	assert.ErrorIs(t, repo.Append(ctx, b), ErrConflict)
}

func TestSQLRepository_UnknownPatient(t *testing.T) {
	db := databasetest.Open(t)
	repo := NewRepository(db)

	err := repo.Append(context.Background(), Initial(uuid.New(), t0))
	assert.ErrorIs(t, err, ErrNoPatient)
}

func TestService_WithSQLRepository(t *testing.T) {
	db := databasetest.Open(t)
	svc := newTestService(NewRepository(db))
	ctx := context.Background()
	pid := databasetest.InsertPatient(t, db, "Caio")

	res, err := svc.RequestTransition(ctx, pid, Regeneration)
	require.NoError(t, err)
	assert.True(t, res.Changed)

	res, err = svc.RequestTransition(ctx, pid, Regeneration)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	hist, err := svc.History(ctx, pid)
	require.NoError(t, err)
	assert.Len(t, hist, 2)
}

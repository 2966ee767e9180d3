package journal

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomestre7/restauris-2.0-app/internal/clock"
	"github.com/ricardomestre7/restauris-2.0-app/internal/logger"
	"github.com/ricardomestre7/restauris-2.0-app/internal/patient"
)

var t0 = time.Date(2026, 4, 7, 16, 0, 0, 0, time.UTC)

type memRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]Entry
}

func newMemRepo() *memRepo {
	return &memRepo{entries: map[uuid.UUID]Entry{}}
}

func (m *memRepo) Create(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *memRepo) Get(_ context.Context, id uuid.UUID) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (m *memRepo) List(_ context.Context, patientID uuid.UUID) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Entry
	for _, e := range m.entries {
		if e.PatientID == patientID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.After(out[j].EntryDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memRepo) Update(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[e.ID]; !ok {
		return ErrNotFound
	}
	m.entries[e.ID] = e
	return nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// patientsStub knows exactly the ids it was built with.
type patientsStub map[uuid.UUID]bool

func (s patientsStub) Get(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	if !s[id] {
		return nil, patient.ErrNotFound
	}
	return &patient.Patient{ID: id}, nil
}

func newTestService(repo Repository, patients PatientSource) Service {
	return NewService(repo, patients, clock.NewStepper(t0, time.Minute), logger.Discard())
}

func rating(v int) *int { return &v }

func TestCreate(t *testing.T) {
	pid := uuid.New()
	repo := newMemRepo()
	svc := newTestService(repo, patientsStub{pid: true})

	e, err := svc.Create(context.Background(), pid, Request{
		EntryDate:    "2026-04-05",
		SleepQuality: rating(2),
		MoodRating:   rating(4),
		Symptoms:     "  headache ",
	})
	require.NoError(t, err)

	assert.Equal(t, pid, e.PatientID)
	assert.Equal(t, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC), e.EntryDate)
	assert.Equal(t, 2, *e.SleepQuality)
	assert.Equal(t, 4, *e.MoodRating)
	assert.Nil(t, e.EnergyLevel)
	assert.Equal(t, "headache", e.Symptoms)
	assert.Equal(t, t0, e.CreatedAt)
	assert.Len(t, repo.entries, 1)
}

func TestCreate_DefaultsToToday(t *testing.T) {
	pid := uuid.New()
	svc := newTestService(newMemRepo(), patientsStub{pid: true})

	e, err := svc.Create(context.Background(), pid, Request{Insights: "calmer"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC), e.EntryDate)
}

func TestCreate_Invalid(t *testing.T) {
	pid := uuid.New()
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"bad date", Request{EntryDate: "07/04/2026"}, []string{"entry_date"}},
		{"rating too low", Request{MoodRating: rating(0)}, []string{"mood_rating"}},
		{"several", Request{EnergyLevel: rating(6), SleepQuality: rating(-1)}, []string{"energy_level", "sleep_quality"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			_, err := newTestService(repo, patientsStub{pid: true}).Create(context.Background(), pid, tt.req)
			require.ErrorIs(t, err, ErrInvalid)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
			assert.Empty(t, repo.entries)
		})
	}
}

func TestUnknownPatient(t *testing.T) {
	svc := newTestService(newMemRepo(), patientsStub{})

	_, err := svc.Create(context.Background(), uuid.New(), Request{})
	assert.ErrorIs(t, err, ErrNoPatient)
	_, err = svc.List(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoPatient)
}

func TestList_LatestFirst(t *testing.T) {
	pid, other := uuid.New(), uuid.New()
	svc := newTestService(newMemRepo(), patientsStub{pid: true, other: true})
	ctx := context.Background()

	_, err := svc.Create(ctx, pid, Request{EntryDate: "2026-03-01", Insights: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, pid, Request{EntryDate: "2026-03-20", Insights: "latest"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, pid, Request{EntryDate: "2026-03-01", Insights: "same day, later"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, other, Request{Insights: "someone else"})
	require.NoError(t, err)

	list, err := svc.List(ctx, pid)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "latest", list[0].Insights)
	assert.Equal(t, "same day, later", list[1].Insights)
	assert.Equal(t, "first", list[2].Insights)
}

func TestUpdate(t *testing.T) {
	pid := uuid.New()
	svc := newTestService(newMemRepo(), patientsStub{pid: true})
	ctx := context.Background()

	e, err := svc.Create(ctx, pid, Request{EntryDate: "2026-04-01", SleepQuality: rating(1)})
	require.NoError(t, err)

	got, err := svc.Update(ctx, e.ID, Request{EntryDate: "2026-04-02", SleepQuality: rating(3), Insights: "better"})
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, pid, got.PatientID)
	assert.Equal(t, 3, *got.SleepQuality)
	assert.Equal(t, "better", got.Insights)
	assert.Equal(t, e.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	_, err = svc.Update(ctx, e.ID, Request{MoodRating: rating(9)})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.Update(ctx, uuid.New(), Request{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	pid := uuid.New()
	svc := newTestService(newMemRepo(), patientsStub{pid: true})
	ctx := context.Background()

	e, err := svc.Create(ctx, pid, Request{})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, e.ID))

	_, err = svc.Get(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, e.ID), ErrNotFound)
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
)

func uniform(c *catalog.Catalog, v int) Answers {
	a := make(Answers, c.Len())
	for _, q := range c.All() {
		a[q.ID] = v
	}
	return a
}

func TestCompute_Bounds(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		value int
		want  int
	}{
		{1, 0},
		{2, 25},
		{3, 50},
		{4, 75},
		{5, 100},
	}
	for _, tt := range tests {
		scores := Compute(c, uniform(c, tt.value))
		require.True(t, scores.Complete())
		for _, cat := range catalog.Categories {
			assert.Equal(t, tt.want, scores[cat], "value=%d category=%s", tt.value, cat)
		}
	}
}

func TestCompute_RoundsOncePerCategory(t *testing.T) {
	c := catalog.Default()
	a := uniform(c, 3)
	// physical total 16 -> 11/20 = 55%
	a["physical_1"] = 4
	// mental total 13 -> 8/20 = 40%
	a["mental_1"] = 1
	// emotional total 14 -> 9/20 = 45%
	a["emotional_2"] = 2

	scores := Compute(c, a)
	assert.Equal(t, 55, scores[catalog.Physical])
	assert.Equal(t, 40, scores[catalog.Mental])
	assert.Equal(t, 45, scores[catalog.Emotional])
	assert.Equal(t, 50, scores[catalog.Energetic])
}

func TestCompute_HalfAwayFromZero(t *testing.T) {
	// Two questions per category: range 2..10, so each answer point is 12.5%.
	opts := catalog.Default().Questions(catalog.Mental)[0].Options
	var qs []catalog.Question
	for _, cat := range catalog.Categories {
		for _, suffix := range []string{"_a", "_b"} {
			qs = append(qs, catalog.Question{ID: string(cat) + suffix, Category: cat, Options: opts})
		}
	}
	c, err := catalog.New(qs)
	require.NoError(t, err)

	// energetic 12.5, emotional 62.5, mental (one answer missing) -12.5
	a := Answers{
		"energetic_a": 2,
		"energetic_b": 1,
		"emotional_a": 4,
		"emotional_b": 3,
		"mental_a":    1,
		"physical_a":  5,
		"physical_b":  5,
		"spiritual_a": 1,
		"spiritual_b": 1,
	}
	scores := Compute(c, a)
	assert.Equal(t, 13, scores[catalog.Energetic])
	assert.Equal(t, 63, scores[catalog.Emotional])
	assert.Equal(t, -13, scores[catalog.Mental])
	assert.Equal(t, 100, scores[catalog.Physical])
	assert.Equal(t, 0, scores[catalog.Spiritual])
}

func TestCompute_MissingAnswersDepressScore(t *testing.T) {
	c := catalog.Default()
	a := uniform(c, 5)
	delete(a, "spiritual_1")

	scores := Compute(c, a)
	// total 20 -> (20-5)/20 = 75%
	assert.Equal(t, 75, scores[catalog.Spiritual])
	assert.Equal(t, 100, scores[catalog.Physical])
}

func TestCompute_EmptyAnswersGoBelowZero(t *testing.T) {
	c := catalog.Default()
	scores := Compute(c, Answers{})
	// (0-5)/20 = -25%
	for _, cat := range catalog.Categories {
		assert.Equal(t, -25, scores[cat])
	}
}

func TestCompute_Deterministic(t *testing.T) {
	c := catalog.Default()
	a := uniform(c, 4)
	a["mental_3"] = 1
	assert.Equal(t, Compute(c, a), Compute(c, a))
}

func TestScores_Complete(t *testing.T) {
	assert.False(t, Scores{}.Complete())
	assert.False(t, Scores(nil).Complete())
	assert.False(t, Scores{catalog.Energetic: 10}.Complete())

	full := Scores{}
	for _, cat := range catalog.Categories {
		full[cat] = 0
	}
	assert.True(t, full.Complete())
}

func TestValidate(t *testing.T) {
	c := catalog.Default()

	require.NoError(t, Validate(c, uniform(c, 3)))

	a := uniform(c, 3)
	delete(a, "mental_2")
	a["physical_4"] = 6
	a["emotional_1"] = 0
	a["bogus"] = 3

	err := Validate(c, a)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"mental_2"}, verr.Missing)
	assert.Equal(t, []string{"emotional_1", "physical_4"}, verr.OutOfRange)
	assert.Equal(t, []string{"bogus"}, verr.Unknown)
	assert.Contains(t, err.Error(), "1 unanswered question(s): mental_2")
}

func TestValidate_Empty(t *testing.T) {
	c := catalog.Default()
	err := Validate(c, nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Missing, c.Len())
}

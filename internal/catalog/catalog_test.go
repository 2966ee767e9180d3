package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FiveQuestionsPerCategory(t *testing.T) {
	c := Default()

	assert.Equal(t, 25, c.Len())
	assert.Equal(t, Categories, c.Categories())
	for _, cat := range Categories {
		assert.Len(t, c.Questions(cat), 5, "category %s", cat)
	}

	q, ok := c.Lookup(SleepQualityQuestion)
	require.True(t, ok)
	assert.Equal(t, Physical, q.Category)

	_, ok = c.Lookup(NutritionQuestion)
	assert.True(t, ok)
}

func TestDefault_AllKeepsCategoryOrder(t *testing.T) {
	all := Default().All()
	require.Len(t, all, 25)
	assert.Equal(t, "energetic_1", all[0].ID)
	assert.Equal(t, "emotional_1", all[5].ID)
	assert.Equal(t, "spiritual_5", all[24].ID)
}

func TestNew_RejectsEmptyCategory(t *testing.T) {
	var qs []Question
	for _, q := range Default().All() {
		if q.Category != Spiritual {
			qs = append(qs, q)
		}
	}

	_, err := New(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category spiritual: no questions")
}

func TestNew_CollectsEveryProblem(t *testing.T) {
	qs := Default().All()
	qs = append(qs,
		Question{ID: "energetic_1", Category: Energetic, Options: optionsGeneric},
		Question{ID: "extra", Category: Category("astral"), Options: optionsGeneric},
		Question{ID: "short", Category: Mental, Options: optionsGeneric[:3]},
		Question{ID: "", Category: Mental, Options: optionsGeneric},
	)

	_, err := New(qs)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "energetic_1: duplicate id")
	assert.Contains(t, msg, `unknown category "astral"`)
	assert.Contains(t, msg, "short: want 5 options, got 3")
	assert.Contains(t, msg, "empty id")
}

func TestNew_RejectsOutOfRangeOption(t *testing.T) {
	bad := []Option{{Value: 0}, {Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}}
	qs := append(Default().All(), Question{ID: "zero", Category: Mental, Options: bad})

	_, err := New(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option value 0 out of range")
}

func TestCatalog_QuestionsReturnsCopy(t *testing.T) {
	c := Default()
	qs := c.Questions(Mental)
	qs[0].ID = "changed"

	assert.Equal(t, "mental_1", c.Questions(Mental)[0].ID)
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory("physical")
	require.NoError(t, err)
	assert.Equal(t, Physical, cat)

	_, err = ParseCategory("fisico")
	assert.Error(t, err)
}

const smallCatalog = `rules:
  sleep_quality: p1
  nutrition: p1
questions:
  - id: e1
    category: energetic
    prompt: Energy?
    options: &five
      - {value: 1, label: one}
      - {value: 2, label: two}
      - {value: 3, label: three}
      - {value: 4, label: four}
      - {value: 5, label: five}
  - id: em1
    category: emotional
    prompt: Mood?
    options: *five
  - id: m1
    category: mental
    prompt: Focus?
    options: *five
  - id: m2
    category: mental
    prompt: Memory?
    options: *five
  - id: p1
    category: physical
    prompt: Body?
    options: *five
  - id: s1
    category: spiritual
    prompt: Purpose?
    options: *five
`

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
	assert.Len(t, c.Questions(Mental), 2)

	q, ok := c.Lookup("m2")
	require.True(t, ok)
	assert.Equal(t, "Memory?", q.Prompt)
	assert.Equal(t, "five", q.Options[4].Label)
	assert.Equal(t, Rules{SleepQuality: "p1", Nutrition: "p1"}, c.Rules())
}

func TestParse_RulesDefaultWhenOmitted(t *testing.T) {
	data := strings.Replace(smallCatalog, "  - id: p1\n", "  - id: physical_3\n", 1)
	data = strings.Replace(data, "    prompt: Body?\n", "    prompt: Sleep?\n    options: *five\n  - id: physical_5\n    category: physical\n    prompt: Food?\n", 1)
	data = strings.Replace(data, "rules:\n  sleep_quality: p1\n  nutrition: p1\n", "", 1)

	c, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultRules, c.Rules())
}

func TestParse_RejectsMissingRuleQuestion(t *testing.T) {
	// No rules block and none of the default ids present.
	data := strings.Replace(smallCatalog, "rules:\n  sleep_quality: p1\n  nutrition: p1\n", "", 1)
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule sleep_quality: question "physical_3" not in catalog`)
	assert.Contains(t, err.Error(), `rule nutrition: question "physical_5" not in catalog`)

	data = strings.Replace(smallCatalog, "sleep_quality: p1", "sleep_quality: nope", 1)
	_, err = Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `question "nope"`)
}

func TestDefault_Rules(t *testing.T) {
	assert.Equal(t, DefaultRules, Default().Rules())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("questions: [oops"))
	assert.Error(t, err)
}

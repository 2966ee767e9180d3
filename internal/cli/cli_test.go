package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/logger"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

type testCLI struct {
	Score   ScoreCmd   `cmd:""`
	Catalog CatalogCmd `cmd:""`
	Migrate MigrateCmd `cmd:""`
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli testCLI
	parser, err := kong.New(&cli, kong.Name("restauris"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Context{Out: &out, Logger: logger.Discard()})
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func answersYAML(v int, skip ...string) string {
	var b strings.Builder
	b.WriteString("answers:\n")
outer:
	for _, q := range catalog.Default().All() {
		for _, s := range skip {
			if s == q.ID {
				continue outer
			}
		}
		b.WriteString("  " + q.ID + ": ")
		b.WriteByte(byte('0' + v))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestScore_Table(t *testing.T) {
	path := writeFile(t, "answers.yaml", answersYAML(3))

	out, err := run(t, "score", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Energetic")
	assert.Contains(t, out, " 50  ")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "5. ")
	assert.NotContains(t, out, "6. ")
}

func TestScore_JSON(t *testing.T) {
	path := writeFile(t, "answers.yaml", answersYAML(5))

	out, err := run(t, "score", "--json", "--locale", "pt-BR", path)
	require.NoError(t, err)

	var got scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 100, got.Scores[catalog.Mental])
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, recommendation.CodeCongratulations, got.Recommendations[0].Code)
}

func TestScore_Incomplete(t *testing.T) {
	path := writeFile(t, "answers.yaml", answersYAML(3, "mental_1"))

	_, err := run(t, "score", path)
	var verr *scoring.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"mental_1"}, verr.Missing)

	out, err := run(t, "score", "--partial", "--json", path)
	require.NoError(t, err)
	var got scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 35, got.Scores[catalog.Mental])
}

func TestScore_PartialBelowZero(t *testing.T) {
	path := writeFile(t, "answers.yaml", answersYAML(1, "spiritual_1"))

	var out string
	require.NotPanics(t, func() {
		var err error
		out, err = run(t, "score", "--partial", path)
		require.NoError(t, err)
	})
	assert.Contains(t, out, " -5  "+strings.Repeat(".", 20))
}

const ruleCatalog = `rules:
  sleep_quality: rest
  nutrition: meals
questions:
  - {id: e, category: energetic, prompt: Energy?, options: &five [{value: 1, label: a}, {value: 2, label: b}, {value: 3, label: c}, {value: 4, label: d}, {value: 5, label: e}]}
  - {id: em, category: emotional, prompt: Mood?, options: *five}
  - {id: m, category: mental, prompt: Focus?, options: *five}
  - {id: rest, category: physical, prompt: Sleep?, options: *five}
  - {id: meals, category: physical, prompt: Food?, options: *five}
  - {id: s, category: spiritual, prompt: Purpose?, options: *five}
`

func TestScore_CustomCatalogRules(t *testing.T) {
	cat := writeFile(t, "catalog.yaml", ruleCatalog)
	answers := writeFile(t, "answers.yaml", "{e: 5, em: 5, m: 5, rest: 1, meals: 5, s: 5}")

	out, err := run(t, "score", "--json", "--catalog", cat, answers)
	require.NoError(t, err)
	var got scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	var codes []recommendation.Code
	for _, r := range got.Recommendations {
		codes = append(codes, r.Code)
	}
	assert.Contains(t, codes, recommendation.CodeSleep)
	assert.NotContains(t, codes, recommendation.CodeNutrition)
}

func TestScore_CatalogWithoutRuleQuestions(t *testing.T) {
	i := strings.Index(ruleCatalog, "questions:")
	cat := writeFile(t, "catalog.yaml", ruleCatalog[i:])
	answers := writeFile(t, "answers.yaml", "{e: 5, em: 5, m: 5, rest: 1, meals: 5, s: 5}")

	_, err := run(t, "score", "--catalog", cat, answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physical_3")
}

func TestBar(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{-25, strings.Repeat(".", 20)},
		{0, strings.Repeat(".", 20)},
		{50, strings.Repeat("#", 10) + strings.Repeat(".", 10)},
		{100, strings.Repeat("#", 20)},
		{130, strings.Repeat("#", 20)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bar(tt.score), "score %d", tt.score)
	}
}

func TestScore_UnknownLocale(t *testing.T) {
	path := writeFile(t, "answers.yaml", answersYAML(3))
	_, err := run(t, "score", "--locale", "fr", path)
	assert.Error(t, err)
}

func TestReadAnswers_Formats(t *testing.T) {
	flat := writeFile(t, "flat.json", `{"energetic_1": 4, "mental_2": 2}`)
	got, err := readAnswers(flat)
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{"energetic_1": 4, "mental_2": 2}, got)

	wrapped := writeFile(t, "wrapped.yaml", "answers:\n  physical_3: 1\n")
	got, err = readAnswers(wrapped)
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{"physical_3": 1}, got)

	broken := writeFile(t, "broken.yaml", "energetic_1: [")
	_, err = readAnswers(broken)
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "spiritual_5")
	assert.Contains(t, out, "25 questions in 5 categories")

	out, err = run(t, "catalog", "--category", "physical")
	require.NoError(t, err)
	assert.Contains(t, out, "physical_3")
	assert.NotContains(t, out, "energetic_1")

	_, err = run(t, "catalog", "--category", "astral")
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(dir, "cli.db"))
	t.Setenv("LOCALE", "")
	envFile := filepath.Join(dir, "missing.env")

	out, err := run(t, "migrate", "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite schema migrated")

	out, err = run(t, "migrate", "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, out, "already up to date")
}

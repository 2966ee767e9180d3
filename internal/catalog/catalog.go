// Package catalog holds the immutable questionnaire definition: the five
// categories, their ordered questions and the answer options of each question.
package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Catalog is an immutable questionnaire. Build it with New so the
// definition-time invariants are checked once, never during scoring.
type Catalog struct {
	byCategory map[Category][]Question
	byID       map[string]Question
	rules      Rules
}

// Rules names the questions whose individual answers trigger a
// recommendation on their own.
type Rules struct {
	SleepQuality string `json:"sleep_quality" yaml:"sleep_quality"`
	Nutrition    string `json:"nutrition" yaml:"nutrition"`
}

// DefaultRules point at the built-in catalog's questions.
var DefaultRules = Rules{SleepQuality: SleepQualityQuestion, Nutrition: NutritionQuestion}

// withDefaults fills unset ids from DefaultRules.
func (r Rules) withDefaults() Rules {
	if r.SleepQuality == "" {
		r.SleepQuality = DefaultRules.SleepQuality
	}
	if r.Nutrition == "" {
		r.Nutrition = DefaultRules.Nutrition
	}
	return r
}

// New validates questions and returns a Catalog using DefaultRules. The rule
// ids are not checked, so a catalog without them simply never fires the
// answer rules; use NewWithRules for catalogs that must carry them.
// Questions keep their given order inside each category.
func New(questions []Question) (*Catalog, error) {
	return build(questions, DefaultRules, false)
}

// NewWithRules is New with explicit rule questions, each of which must exist
// in the catalog. Empty fields fall back to DefaultRules.
func NewWithRules(questions []Question, rules Rules) (*Catalog, error) {
	return build(questions, rules.withDefaults(), true)
}

func build(questions []Question, rules Rules, checkRules bool) (*Catalog, error) {
	var result *multierror.Error

	c := &Catalog{
		byCategory: make(map[Category][]Question, len(Categories)),
		byID:       make(map[string]Question, len(questions)),
		rules:      rules,
	}

	for i, q := range questions {
		if q.ID == "" {
			result = multierror.Append(result, fmt.Errorf("question #%d: empty id", i+1))
			continue
		}
		if _, dup := c.byID[q.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("question %s: duplicate id", q.ID))
			continue
		}
		if !q.Category.Known() {
			result = multierror.Append(result, fmt.Errorf("question %s: unknown category %q", q.ID, q.Category))
			continue
		}
		if err := validateOptions(q); err != nil {
			result = multierror.Append(result, err)
			continue
		}

		q.Options = append([]Option(nil), q.Options...)
		c.byID[q.ID] = q
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
	}

	for _, cat := range Categories {
		if len(c.byCategory[cat]) == 0 {
			result = multierror.Append(result, fmt.Errorf("category %s: no questions", cat))
		}
	}

	if checkRules {
		for _, r := range [...]struct{ name, id string }{
			{"sleep_quality", rules.SleepQuality},
			{"nutrition", rules.Nutrition},
		} {
			if _, ok := c.byID[r.id]; !ok {
				result = multierror.Append(result, fmt.Errorf("rule %s: question %q not in catalog", r.name, r.id))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func validateOptions(q Question) error {
	if len(q.Options) != MaxAnswer-MinAnswer+1 {
		return fmt.Errorf("question %s: want %d options, got %d", q.ID, MaxAnswer-MinAnswer+1, len(q.Options))
	}
	seen := make(map[int]bool, len(q.Options))
	for _, o := range q.Options {
		if o.Value < MinAnswer || o.Value > MaxAnswer {
			return fmt.Errorf("question %s: option value %d out of range", q.ID, o.Value)
		}
		if seen[o.Value] {
			return fmt.Errorf("question %s: duplicate option value %d", q.ID, o.Value)
		}
		seen[o.Value] = true
	}
	return nil
}

// Categories returns the fixed category order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), Categories...)
}

// Questions returns the ordered questions of one category.
func (c *Catalog) Questions(cat Category) []Question {
	return append([]Question(nil), c.byCategory[cat]...)
}

// All returns every question grouped by category in catalog order.
func (c *Catalog) All() []Question {
	out := make([]Question, 0, len(c.byID))
	for _, cat := range Categories {
		out = append(out, c.byCategory[cat]...)
	}
	return out
}

// Len is the total number of questions.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// Rules returns the questions the answer rules look at.
func (c *Catalog) Rules() Rules {
	return c.rules
}

// Lookup finds a question by id.
func (c *Catalog) Lookup(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

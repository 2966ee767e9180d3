// Package scoring converts questionnaire answers into 0-100 category scores.
package scoring

import (
	"math"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
)

// Answers maps a question id to its 1-5 answer.
type Answers map[string]int

// Scores maps each category to a normalized 0-100 score.
type Scores map[catalog.Category]int

// Complete reports whether every catalog category has a score.
func (s Scores) Complete() bool {
	if len(s) == 0 {
		return false
	}
	for _, cat := range catalog.Categories {
		if _, ok := s[cat]; !ok {
			return false
		}
	}
	return true
}

// Compute scores each category independently:
//
//	round((total - n) / (5n - n) * 100)
//
// where n is the number of questions in the category. Missing answers count
// as zero, so a partial map depresses the score instead of failing; callers
// gate submissions with Validate first.
func Compute(c *catalog.Catalog, answers Answers) Scores {
	scores := make(Scores, len(catalog.Categories))
	for _, cat := range c.Categories() {
		questions := c.Questions(cat)

		total := 0
		for _, q := range questions {
			total += answers[q.ID]
		}

		n := len(questions)
		lo := n * catalog.MinAnswer
		hi := n * catalog.MaxAnswer
		ratio := float64(total-lo) / float64(hi-lo)
		scores[cat] = int(math.Round(ratio * 100))
	}
	return scores
}

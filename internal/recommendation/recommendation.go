// Package recommendation derives the ordered advice list shown after an
// assessment from the category scores and a few individual answers.
package recommendation

import (
	"fmt"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

const (
	LowThreshold = 40
	MidThreshold = 60

	// An individual answer at or below this value triggers its answer rule.
	flagAnswer = 2
)

// Code identifies which message fired. Codes are stable; message text is
// localized.
type Code string

const (
	CodeSleep           Code = "sleep"
	CodeNutrition       Code = "nutrition"
	CodeCongratulations Code = "congratulations"
	CodeFallback        Code = "fallback"
)

// LowCode is the code used when a category scores below LowThreshold.
func LowCode(c catalog.Category) Code { return Code(string(c) + ".low") }

// MidCode is the code used when a category scores below MidThreshold.
func MidCode(c catalog.Category) Code { return Code(string(c) + ".mid") }

type Recommendation struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Messages returns only the texts, in order.
func Messages(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Message
	}
	return out
}

type Engine struct {
	templates         Templates
	sleepQuestion     string
	nutritionQuestion string
}

// New builds an engine that renders messages for locale.
func New(locale string) (*Engine, error) {
	t, err := TemplatesFor(locale)
	if err != nil {
		return nil, err
	}
	return &Engine{
		templates:         t,
		sleepQuestion:     catalog.SleepQualityQuestion,
		nutritionQuestion: catalog.NutritionQuestion,
	}, nil
}

// WithRuleQuestions points the answer rules at different question ids, for
// catalogs that do not use the default ids.
func (e *Engine) WithRuleQuestions(sleep, nutrition string) *Engine {
	cp := *e
	cp.sleepQuestion = sleep
	cp.nutritionQuestion = nutrition
	return &cp
}

// ForCatalog points the answer rules at the questions c designates.
func (e *Engine) ForCatalog(c *catalog.Catalog) *Engine {
	r := c.Rules()
	return e.WithRuleQuestions(r.SleepQuality, r.Nutrition)
}

// Build returns the recommendations for one assessment. The order is fixed:
// category messages in catalog order, then answer rules, then either the
// congratulations message (every category at or above MidThreshold) or, if
// nothing fired, the fallback. The result is never empty.
func (e *Engine) Build(scores scoring.Scores, answers scoring.Answers) []Recommendation {
	var recs []Recommendation

	for _, cat := range catalog.Categories {
		score := scores[cat]
		switch {
		case score < LowThreshold:
			recs = append(recs, e.render(LowCode(cat)))
		case score < MidThreshold:
			recs = append(recs, e.render(MidCode(cat)))
		}
	}

	if flagged(answers, e.sleepQuestion) {
		recs = append(recs, e.render(CodeSleep))
	}
	if flagged(answers, e.nutritionQuestion) {
		recs = append(recs, e.render(CodeNutrition))
	}

	if allAtLeast(scores, MidThreshold) {
		recs = append(recs, e.render(CodeCongratulations))
	} else if len(recs) == 0 {
		recs = append(recs, e.render(CodeFallback))
	}

	return recs
}

func (e *Engine) render(code Code) Recommendation {
	msg, ok := e.templates[code]
	if !ok {
		msg = string(code)
	}
	return Recommendation{Code: code, Message: msg}
}

// flagged is true for an answered question at or below flagAnswer. An
// unanswered question never fires.
func flagged(answers scoring.Answers, id string) bool {
	v, ok := answers[id]
	return ok && v > 0 && v <= flagAnswer
}

func allAtLeast(scores scoring.Scores, threshold int) bool {
	for _, cat := range catalog.Categories {
		v, ok := scores[cat]
		if !ok || v < threshold {
			return false
		}
	}
	return true
}

func (c Code) String() string { return string(c) }

func (r Recommendation) String() string { return fmt.Sprintf("[%s] %s", r.Code, r.Message) }

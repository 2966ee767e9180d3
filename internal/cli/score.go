package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

type ScoreCmd struct {
	CatalogFlag

	Answers string `arg:"" help:"Answers file (YAML or JSON)." type:"existingfile"`
	Locale  string `help:"Recommendation language (en, pt-BR)." default:"en" env:"LOCALE"`
	Partial bool   `help:"Score even when questions are unanswered; missing answers count as zero."`
	JSON    bool   `help:"Print JSON instead of a table." name:"json"`
}

type scoreOutput struct {
	Scores          scoring.Scores                  `json:"scores"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
}

func (cmd *ScoreCmd) Run(ctx *Context) error {
	cat, err := cmd.load()
	if err != nil {
		return err
	}
	engine, err := recommendation.New(cmd.Locale)
	if err != nil {
		return err
	}
	engine = engine.ForCatalog(cat)
	answers, err := readAnswers(cmd.Answers)
	if err != nil {
		return err
	}

	if err := scoring.Validate(cat, answers); err != nil {
		if !cmd.Partial {
			return err
		}
		ctx.Logger.Warn("scoring incomplete questionnaire", "err", err)
	}

	scores := scoring.Compute(cat, answers)
	out := scoreOutput{Scores: scores, Recommendations: engine.Build(scores, answers)}

	if cmd.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(ctx.Out, "Scores")
	for _, c := range cat.Categories() {
		fmt.Fprintf(ctx.Out, "  %-10s %3d  %s\n", c.Label(), scores[c], bar(scores[c]))
	}
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, "Recommendations")
	for i, r := range out.Recommendations {
		fmt.Fprintf(ctx.Out, "  %d. %s\n", i+1, r.Message)
	}
	return nil
}

// bar draws a 20-cell gauge. Partial questionnaires can score outside
// 0-100, so the fill is clamped.
func bar(score int) string {
	n := min(max(score/5, 0), 20)
	return strings.Repeat("#", n) + strings.Repeat(".", 20-n)
}

type CatalogCmd struct {
	CatalogFlag

	Category string `help:"Only list one category (energetic, emotional, mental, physical, spiritual)."`
}

func (cmd *CatalogCmd) Run(ctx *Context) error {
	cat, err := cmd.load()
	if err != nil {
		return err
	}

	var only catalog.Category
	if cmd.Category != "" {
		if only, err = catalog.ParseCategory(cmd.Category); err != nil {
			return err
		}
	}

	for _, c := range cat.Categories() {
		if only != "" && c != only {
			continue
		}
		fmt.Fprintf(ctx.Out, "%s\n", c.Label())
		for _, q := range cat.Questions(c) {
			fmt.Fprintf(ctx.Out, "  %-12s %s\n", q.ID, q.Prompt)
			for _, o := range q.Options {
				fmt.Fprintf(ctx.Out, "  %12s   %d = %s\n", "", o.Value, o.Label)
			}
		}
	}
	fmt.Fprintf(ctx.Out, "\n%d questions in %d categories\n", cat.Len(), len(catalog.Categories))
	return nil
}

// Package cli holds the restauris command-line subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/ricardomestre7/restauris-2.0-app/internal/app"
	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

type Context struct {
	Out    io.Writer
	Logger *log.Logger
}

// CatalogFlag is shared by the commands that read questions.
type CatalogFlag struct {
	Catalog string `help:"YAML question catalog; the built-in catalog when empty." type:"path" env:"CATALOG_PATH"`
}

func (f CatalogFlag) load() (*catalog.Catalog, error) {
	return app.LoadCatalog(f.Catalog)
}

// readAnswers accepts YAML or JSON, either a flat id-to-value mapping or
// the same mapping under an "answers" key.
func readAnswers(path string) (scoring.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}

	var wrapped struct {
		Answers scoring.Answers `yaml:"answers"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Answers) > 0 {
		return wrapped.Answers, nil
	}

	var flat scoring.Answers
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("parsing answers %s: %w", path, err)
	}
	return flat, nil
}

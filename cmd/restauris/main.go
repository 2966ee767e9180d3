package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ricardomestre7/restauris-2.0-app/internal/cli"
	"github.com/ricardomestre7/restauris-2.0-app/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	LogLevel string `help:"Log level." default:"warn" env:"LOG_LEVEL" enum:"debug,info,warn,error"`

	Score   cli.ScoreCmd   `cmd:"" help:"Score an answers file and print recommendations."`
	Catalog cli.CatalogCmd `cmd:"" help:"List the questionnaire."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply database migrations."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("restauris"),
		kong.Description("Wellness questionnaire scoring and recommendations"),
		kong.UsageOnError(),
		kong.Vars{"version": "v2.0.0"},
	)

	lg, err := logger.New(logger.Config{Level: CLI.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(&cli.Context{Out: os.Stdout, Logger: lg}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

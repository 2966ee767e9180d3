package cli

import (
	"context"
	"fmt"

	"github.com/ricardomestre7/restauris-2.0-app/internal/config"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/database"
)

type MigrateCmd struct {
	EnvFile string `help:"Environment file to read before connecting." default:".env" type:"path"`
}

func (cmd *MigrateCmd) Run(ctx *Context) error {
	cfg, err := config.Load(cmd.EnvFile)
	if err != nil {
		return err
	}

	db, err := database.Open(context.Background(), cfg.Database, ctx.Logger)
	if err != nil {
		return err
	}
	defer db.Close()

	changed, err := db.Migrate()
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(ctx.Out, "%s schema migrated\n", cfg.Database.Driver)
	} else {
		fmt.Fprintf(ctx.Out, "%s schema already up to date\n", cfg.Database.Driver)
	}
	return nil
}

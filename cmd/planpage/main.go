package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/jharlow/planpage/internal/cli"
	"github.com/jharlow/planpage/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`

	Generate cli.GenerateCmd `cmd:"" default:"1" help:"Generate a planner PDF from a day file."`
	Check    cli.CheckCmd    `cmd:"" help:"Parse and validate a day file without writing output."`
	Preview  cli.PreviewCmd  `cmd:"" help:"Render the day grid in the terminal."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("planpage"),
		kong.Description("Fixed-page daily planner PDF generator"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{RunID: uuid.NewString()}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

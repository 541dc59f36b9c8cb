package cli

import (
	"fmt"

	"github.com/jharlow/planpage/internal/config"
	"github.com/jharlow/planpage/internal/layout"
	"github.com/jharlow/planpage/internal/logger"
	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/render"
	"github.com/jharlow/planpage/internal/validation"
)

type GenerateCmd struct {
	File     string `arg:"" help:"Day file (TOML)." type:"existingfile"`
	Output   string `help:"Output PDF path. Defaults to the day file with a .pdf extension." type:"path"`
	Strict   bool   `help:"Fail when schedule entries overlap."`
	Overflow string `help:"Policy when input exceeds a fixed page area." enum:"truncate,fail" default:"truncate"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	policy := models.OverflowPolicy(c.Overflow)
	logger.Info("generating planner", "run", ctx.RunID, "file", c.File)

	d, err := loadDay(c.File, policy)
	if err != nil {
		return err
	}

	if c.Strict {
		result := validation.New().CheckEntries(d.entries, d.grid)
		if result.HasConflicts() {
			return fmt.Errorf("schedule conflicts:\n%s", result.FormatReport())
		}
	}

	p, err := layout.Layout(d.grid, d.entries, d.blocks, d.sidebar(), d.cfg.PageGeometry(), layout.Options{NotesOverflow: policy})
	if err != nil {
		return err
	}

	out := c.Output
	if out == "" {
		out = config.OutputPath(c.File)
	}
	if err := render.WritePDF(p, out); err != nil {
		return err
	}

	logger.Info("planner written", "run", ctx.RunID, "output", out, "primitives", len(p.Ops))
	fmt.Printf("Wrote %s\n", out)
	return nil
}

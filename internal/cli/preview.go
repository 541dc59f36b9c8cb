package cli

import (
	"fmt"

	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/preview"
)

type PreviewCmd struct {
	File string `arg:"" help:"Day file (TOML)." type:"existingfile"`
}

func (c *PreviewCmd) Run(ctx *Context) error {
	d, err := loadDay(c.File, models.OverflowTruncate)
	if err != nil {
		return err
	}

	fmt.Print(preview.Render(d.grid, d.entries, d.blocks, d.sidebar()))
	return nil
}

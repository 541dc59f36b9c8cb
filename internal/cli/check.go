package cli

import (
	"fmt"

	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/validation"
)

type CheckCmd struct {
	File string `arg:"" help:"Day file (TOML)." type:"existingfile"`
}

// Run parses and validates the day file without writing any output, so a
// broken file is caught before print time.
func (c *CheckCmd) Run(ctx *Context) error {
	d, err := loadDay(c.File, models.OverflowTruncate)
	if err != nil {
		return err
	}

	fmt.Printf("Parsed %d schedule entries for %s\n", len(d.entries), d.cfg.DateText)
	fmt.Printf("Top three: %d of %d slots filled\n", len(d.top), models.MaxPriorities)
	fmt.Printf("Notes: %d lines, Habits: %d\n\n", len(d.cfg.Notes), len(d.cfg.Habits))

	result := validation.New().CheckEntries(d.entries, d.grid)
	fmt.Println(result.FormatReport())

	return nil
}

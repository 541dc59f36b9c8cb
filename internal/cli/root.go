package cli

import (
	"fmt"

	"github.com/jharlow/planpage/internal/config"
	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/schedule"
)

// Context carries state shared by every command.
type Context struct {
	RunID string
}

// day bundles the outcome of the parse and derive stages: everything a
// command needs to lay out, inspect or preview the page.
type day struct {
	cfg     config.Day
	grid    *grid.Grid
	entries []models.ScheduleEntry
	top     models.PriorityList
	blocks  []models.ColorBlock
}

// loadDay runs the front half of the pipeline against one day file.
func loadDay(path string, overflow models.OverflowPolicy) (*day, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(cfg.DayStart, cfg.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("day window: %w", err)
	}

	entries, err := schedule.ParseLines(cfg.Schedule, g)
	if err != nil {
		return nil, err
	}

	palette, err := cfg.PaletteColors()
	if err != nil {
		return nil, err
	}

	top, blocks, err := schedule.Derive(entries, palette, schedule.Options{Overflow: overflow})
	if err != nil {
		return nil, err
	}

	return &day{cfg: cfg, grid: g, entries: entries, top: top, blocks: blocks}, nil
}

func (d *day) sidebar() models.SidebarModel {
	return models.SidebarModel{
		DateText: d.cfg.DateText,
		TopThree: d.top,
		Notes:    d.cfg.Notes,
		Habits:   d.cfg.SidebarHabits(),
	}
}

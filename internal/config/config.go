// Package config reads the TOML day file a planner page is generated from.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/layout"
	"github.com/jharlow/planpage/internal/models"
)

// DefaultDateText is the hand-writable blank the date field falls back to.
const DefaultDateText = "____________________"

// DefaultHabits seeds the checklist when the file names none.
var DefaultHabits = []string{"Walk", "Stretch", "Water", "10 min sweat"}

// NoteLines decodes from either a TOML array of strings or a single
// string, which is split on newlines.
type NoteLines []string

func (n *NoteLines) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		if t == "" {
			*n = nil
			return nil
		}
		*n = strings.Split(strings.ReplaceAll(t, "\r\n", "\n"), "\n")
	case []interface{}:
		lines := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("notes entries must be strings, got %T", item)
			}
			lines = append(lines, s)
		}
		*n = lines
	default:
		return fmt.Errorf("notes must be a string or an array of strings, got %T", v)
	}
	return nil
}

// Day is one decoded day file.
type Day struct {
	DateText string    `toml:"date_text"`
	Schedule []string  `toml:"schedule_texts"`
	Notes    NoteLines `toml:"notes"`
	Habits   []string  `toml:"habits"`

	// Optional overrides; zero values keep the defaults.
	DayStart string    `toml:"day_start"`
	DayEnd   string    `toml:"day_end"`
	Palette  []string  `toml:"palette"`
	Geometry *Geometry `toml:"geometry"`
}

// Geometry overrides the default page measurements, in points.
// Zero-valued fields keep their defaults.
type Geometry struct {
	Margin        float64 `toml:"margin"` // applied to all four sides
	RowHeight     float64 `toml:"row_height"`
	TimeColWidth  float64 `toml:"time_col_width"`
	ColorColWidth float64 `toml:"color_col_width"`
	TextColWidth  float64 `toml:"text_col_width"`
	GapWidth      float64 `toml:"gap_width"`
	SidebarWidth  float64 `toml:"sidebar_width"`
	NotesLines    int     `toml:"notes_lines"`
}

// Load reads and decodes a day file, applying defaults for absent keys.
func Load(path string) (Day, error) {
	var d Day
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return Day{}, fmt.Errorf("decode %s: %w", path, err)
	}
	d.applyDefaults()
	return d, nil
}

func (d *Day) applyDefaults() {
	if d.DateText == "" {
		d.DateText = DefaultDateText
	}
	if len(d.Habits) == 0 {
		d.Habits = append([]string(nil), DefaultHabits...)
	}
	if d.DayStart == "" {
		d.DayStart = grid.DefaultDayStart
	}
	if d.DayEnd == "" {
		d.DayEnd = grid.DefaultDayEnd
	}
}

// PaletteColors parses the palette override, or returns the default cycle.
func (d Day) PaletteColors() ([]models.Color, error) {
	if len(d.Palette) == 0 {
		return models.DefaultPalette, nil
	}
	colors := make([]models.Color, 0, len(d.Palette))
	for _, s := range d.Palette {
		c, err := models.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// PageGeometry merges the file's overrides onto the default layout.
func (d Day) PageGeometry() layout.Geometry {
	geo := layout.DefaultGeometry()
	o := d.Geometry
	if o == nil {
		return geo
	}
	if o.Margin > 0 {
		geo.MarginLeft = o.Margin
		geo.MarginRight = o.Margin
		geo.MarginTop = o.Margin
		geo.MarginBottom = o.Margin
	}
	if o.RowHeight > 0 {
		geo.RowHeight = o.RowHeight
	}
	if o.TimeColWidth > 0 {
		geo.TimeColWidth = o.TimeColWidth
	}
	if o.ColorColWidth > 0 {
		geo.ColorColWidth = o.ColorColWidth
	}
	if o.TextColWidth > 0 {
		geo.TextColWidth = o.TextColWidth
	}
	if o.GapWidth > 0 {
		geo.GapWidth = o.GapWidth
	}
	if o.SidebarWidth > 0 {
		geo.SidebarWidth = o.SidebarWidth
	}
	if o.NotesLines > 0 {
		geo.NotesLines = o.NotesLines
	}
	return geo
}

// SidebarHabits returns every habit unchecked; boxes are ticked by hand
// on the printed page.
func (d Day) SidebarHabits() []models.Habit {
	habits := make([]models.Habit, 0, len(d.Habits))
	for _, name := range d.Habits {
		habits = append(habits, models.Habit{Name: name})
	}
	return habits
}

// OutputPath derives the PDF name from the day file: same base name,
// extension swapped.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".pdf"
}

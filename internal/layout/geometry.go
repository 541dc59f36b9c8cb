package layout

import "fmt"

// Geometry is the page's physical measurements, in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	TimeColWidth  float64
	ColorColWidth float64 // each of the two slim block columns
	TextColWidth  float64
	GapWidth      float64
	SidebarWidth  float64

	RowHeight  float64
	NotesLines int
}

// DefaultGeometry is the original compact letter layout: quarter-inch
// margins, 45pt time column, two 15pt color columns, 190pt task column,
// a 10pt gap and a 250pt sidebar with 12 ruled notes lines.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:     612, // US letter, portrait
		PageHeight:    792,
		MarginLeft:    18,
		MarginRight:   18,
		MarginTop:     18,
		MarginBottom:  18,
		TimeColWidth:  45,
		ColorColWidth: 15,
		TextColWidth:  190,
		GapWidth:      10,
		SidebarWidth:  250,
		RowHeight:     24,
		NotesLines:    12,
	}
}

// scheduleWidth is the width of the left grid: time column, the two slim
// color columns and the task text column.
func (g Geometry) scheduleWidth() float64 {
	return g.TimeColWidth + 2*g.ColorColWidth + g.TextColWidth
}

// sidebarX is the x-origin of the right column.
func (g Geometry) sidebarX() float64 {
	return g.MarginLeft + g.scheduleWidth() + g.GapWidth
}

// validate rejects geometry that cannot fit the page. A broken geometry
// would print a visually invalid page, so this is fatal for the run.
func (g Geometry) validate(slotCount, habitCount int) error {
	dims := []struct {
		name  string
		value float64
	}{
		{"page width", g.PageWidth},
		{"page height", g.PageHeight},
		{"left margin", g.MarginLeft},
		{"right margin", g.MarginRight},
		{"top margin", g.MarginTop},
		{"bottom margin", g.MarginBottom},
		{"time column width", g.TimeColWidth},
		{"color column width", g.ColorColWidth},
		{"text column width", g.TextColWidth},
		{"gap width", g.GapWidth},
		{"sidebar width", g.SidebarWidth},
		{"row height", g.RowHeight},
	}
	for _, d := range dims {
		if d.value < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrLayoutOverflow, d.name, d.value)
		}
	}
	if g.NotesLines < 1 {
		return fmt.Errorf("%w: notes area needs at least one ruled line, got %d", ErrLayoutOverflow, g.NotesLines)
	}

	totalWidth := g.MarginLeft + g.scheduleWidth() + g.GapWidth + g.SidebarWidth + g.MarginRight
	if totalWidth > g.PageWidth {
		return fmt.Errorf("%w: columns need %.1fpt but the page is %.1fpt wide", ErrLayoutOverflow, totalWidth, g.PageWidth)
	}

	gridHeight := float64(slotCount) * g.RowHeight
	if g.MarginTop+gridHeight+g.MarginBottom > g.PageHeight {
		return fmt.Errorf("%w: %d rows of %.1fpt need %.1fpt but the page is %.1fpt tall", ErrLayoutOverflow, slotCount, g.RowHeight, g.MarginTop+gridHeight+g.MarginBottom, g.PageHeight)
	}

	sideHeight := g.sidebarHeight(habitCount)
	if g.MarginTop+sideHeight+g.MarginBottom > g.PageHeight {
		return fmt.Errorf("%w: sidebar needs %.1fpt but the page is %.1fpt tall", ErrLayoutOverflow, g.MarginTop+sideHeight+g.MarginBottom, g.PageHeight)
	}

	return nil
}

// sidebarHeight is the vertical extent of the right column: date field,
// then the three fixed sections with a heading row apiece.
func (g Geometry) sidebarHeight(habitCount int) float64 {
	rows := 1 + // date field
		1 + 3 + // top-three heading and its three slots
		1 + g.NotesLines + // notes heading and ruled lines
		1 + habitCount // habits heading and one row per habit
	return float64(rows)*sidebarRowHeight + 3*sectionGap
}

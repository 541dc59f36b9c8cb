// Package layout maps the derived day model onto absolute page
// coordinates, producing the draw plan a render adapter consumes.
package layout

import (
	"errors"
	"fmt"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/plan"
)

// Layout errors.
var (
	ErrLayoutOverflow = errors.New("layout exceeds page bounds")
	ErrTooManyNotes   = errors.New("too many notes lines")
)

const (
	labelFontSize   = 8
	taskFontSize    = 9
	sidebarFontSize = 9
	headingFontSize = 11

	sidebarRowHeight = 18.0
	sectionGap       = 10.0

	ruleWidth = 0.25
	textPad   = 4.0
)

// Grid chrome colors.
var (
	ruleColor = models.Color{R: 0x80, G: 0x80, B: 0x80}
	timeColBg = models.Color{R: 0xF5, G: 0xF5, B: 0xF5}
	boxColor  = models.Color{R: 0x00, G: 0x00, B: 0x00}
)

const (
	checkboxEmpty   = "[ ]"
	checkboxChecked = "[x]"
)

// Options tunes layout behavior.
type Options struct {
	// NotesOverflow decides whether notes beyond the ruled lines are
	// silently cut or fail the run. Empty means OverflowTruncate.
	NotesOverflow models.OverflowPolicy
}

// Layout computes the full draw plan for one page: the time grid with
// its labels and rules, the color blocks, the task text and the sidebar.
// Nothing is emitted if any input fails validation.
func Layout(g *grid.Grid, entries []models.ScheduleEntry, blocks []models.ColorBlock, sidebar models.SidebarModel, geo Geometry, opts Options) (*plan.Plan, error) {
	if err := geo.validate(g.Count(), len(sidebar.Habits)); err != nil {
		return nil, err
	}
	if len(sidebar.Notes) > geo.NotesLines && opts.NotesOverflow == models.OverflowFail {
		return nil, fmt.Errorf("%w: %d notes for %d ruled lines", ErrTooManyNotes, len(sidebar.Notes), geo.NotesLines)
	}

	p := &plan.Plan{}
	layoutGrid(p, g, geo)
	layoutBlocks(p, blocks, geo)
	layoutTasks(p, entries, geo)
	layoutSidebar(p, sidebar, geo)
	return p, nil
}

// slotY maps a slot index to the top edge of its row. Monotonic; slot 0
// sits at the top of the grid.
func slotY(geo Geometry, slot grid.Slot) float64 {
	return geo.MarginTop + float64(slot)*geo.RowHeight
}

// rowBaseline is the text baseline for a run centered in the row that
// starts at rowTop.
func rowBaseline(geo Geometry, rowTop, fontSize float64) float64 {
	return rowTop + (geo.RowHeight+fontSize)/2
}

func layoutGrid(p *plan.Plan, g *grid.Grid, geo Geometry) {
	x0 := geo.MarginLeft
	top := geo.MarginTop
	height := float64(g.Count()) * geo.RowHeight
	width := geo.scheduleWidth()

	// Shaded time column sits under everything else on the grid.
	p.Append(plan.FillRect{X: x0, Y: top, W: geo.TimeColWidth, H: height, Color: timeColBg, On: plan.LayerGrid})

	labelStyle := plan.TextStyle{Size: labelFontSize}
	for slot := 0; slot < g.Count(); slot++ {
		rowTop := slotY(geo, slot)
		p.Append(
			plan.Text{X: x0 + textPad, Y: rowBaseline(geo, rowTop, labelFontSize), S: g.Label(slot), Style: labelStyle, On: plan.LayerGrid},
			plan.Line{X1: x0, Y1: rowTop, X2: x0 + width, Y2: rowTop, Width: ruleWidth, Color: ruleColor, On: plan.LayerGrid},
		)
	}
	// Closing rule under the last row.
	p.Append(plan.Line{X1: x0, Y1: top + height, X2: x0 + width, Y2: top + height, Width: ruleWidth, Color: ruleColor, On: plan.LayerGrid})

	// Column separators, left edge to right edge.
	for _, x := range []float64{
		x0,
		x0 + geo.TimeColWidth,
		x0 + geo.TimeColWidth + geo.ColorColWidth,
		x0 + geo.TimeColWidth + 2*geo.ColorColWidth,
		x0 + width,
	} {
		p.Append(plan.Line{X1: x, Y1: top, X2: x, Y2: top + height, Width: ruleWidth, Color: ruleColor, On: plan.LayerGrid})
	}
}

func layoutBlocks(p *plan.Plan, blocks []models.ColorBlock, geo Geometry) {
	leftX := geo.MarginLeft + geo.TimeColWidth
	for _, blk := range blocks {
		y := slotY(geo, blk.Start)
		// One contiguous rectangle for the whole span, not a cell per slot.
		h := float64(blk.End-blk.Start) * geo.RowHeight
		p.Append(plan.FillRect{X: leftX, Y: y, W: geo.ColorColWidth, H: h, Color: blk.LeftColor, On: plan.LayerBlock})
		if blk.RightColor != nil {
			p.Append(plan.FillRect{X: leftX + geo.ColorColWidth, Y: y, W: geo.ColorColWidth, H: h, Color: *blk.RightColor, On: plan.LayerBlock})
		}
	}
}

func layoutTasks(p *plan.Plan, entries []models.ScheduleEntry, geo Geometry) {
	textX := geo.MarginLeft + geo.TimeColWidth + 2*geo.ColorColWidth + textPad
	style := plan.TextStyle{Size: taskFontSize}
	for _, e := range entries {
		// Anchored to the entry's first row regardless of span length.
		rowTop := slotY(geo, e.Start)
		p.Append(plan.Text{X: textX, Y: rowBaseline(geo, rowTop, taskFontSize), S: e.Task, Style: style, On: plan.LayerText})
	}
}

func layoutSidebar(p *plan.Plan, sb models.SidebarModel, geo Geometry) {
	x := geo.sidebarX()
	w := geo.SidebarWidth
	y := geo.MarginTop

	body := plan.TextStyle{Size: sidebarFontSize}
	heading := plan.TextStyle{Size: headingFontSize, Bold: true}

	baseline := func(rowTop float64) float64 { return rowTop + sidebarRowHeight - 5 }
	rule := func(rowTop float64, width float64, c models.Color) plan.Line {
		return plan.Line{X1: x, Y1: rowTop + sidebarRowHeight, X2: x + w, Y2: rowTop + sidebarRowHeight, Width: width, Color: c, On: plan.LayerSidebar}
	}

	// Date field: label plus a rule to write on.
	p.Append(
		plan.Text{X: x, Y: baseline(y), S: "Date: " + sb.DateText, Style: heading, On: plan.LayerSidebar},
		rule(y, 1, boxColor),
	)
	y += sidebarRowHeight + sectionGap

	// Top three: always exactly three slots, blanks left for hand-writing.
	p.Append(plan.Text{X: x, Y: baseline(y), S: "Top 3 Things", Style: heading, On: plan.LayerSidebar})
	y += sidebarRowHeight
	for i := 0; i < models.MaxPriorities; i++ {
		line := fmt.Sprintf("%d.", i+1)
		if i < len(sb.TopThree) {
			line += " " + sb.TopThree[i]
		}
		p.Append(
			plan.Text{X: x, Y: baseline(y), S: line, Style: body, On: plan.LayerSidebar},
			rule(y, ruleWidth, ruleColor),
		)
		y += sidebarRowHeight
	}
	y += sectionGap

	// Notes: a fixed ruled area. Extra notes are already policy-checked
	// in Layout, so anything past the last line is cut here.
	p.Append(plan.Text{X: x, Y: baseline(y), S: "Notes", Style: heading, On: plan.LayerSidebar})
	y += sidebarRowHeight
	for i := 0; i < geo.NotesLines; i++ {
		if i < len(sb.Notes) && sb.Notes[i] != "" {
			p.Append(plan.Text{X: x, Y: baseline(y), S: sb.Notes[i], Style: body, On: plan.LayerSidebar})
		}
		p.Append(rule(y, ruleWidth, ruleColor))
		y += sidebarRowHeight
	}
	y += sectionGap

	// Habit checklist, one unchecked box per habit.
	p.Append(plan.Text{X: x, Y: baseline(y), S: "Habits", Style: heading, On: plan.LayerSidebar})
	y += sidebarRowHeight
	for _, h := range sb.Habits {
		box := checkboxEmpty
		if h.Checked {
			box = checkboxChecked
		}
		p.Append(
			plan.Text{X: x, Y: baseline(y), S: box, Style: body, On: plan.LayerSidebar},
			plan.Text{X: x + 24, Y: baseline(y), S: h.Name, Style: body, On: plan.LayerSidebar},
			rule(y, ruleWidth, ruleColor),
		)
		y += sidebarRowHeight
	}
}

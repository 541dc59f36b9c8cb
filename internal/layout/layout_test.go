package layout

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/plan"
	"github.com/jharlow/planpage/internal/schedule"
)

// halloweenDay builds the reference day used across the layout tests.
func halloweenDay(t *testing.T) (*grid.Grid, []models.ScheduleEntry, models.PriorityList, []models.ColorBlock, models.SidebarModel) {
	t.Helper()

	g := grid.Default()
	lines := []string{
		"06:00|2|mourning routine",
		"07:00|2|breakfast",
		"08:00|7|*Costume Work",
	}

	entries, err := schedule.ParseLines(lines, g)
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	top, blocks, err := schedule.Derive(entries, nil, schedule.Options{})
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	sidebar := models.SidebarModel{
		DateText: "_Fri 10/31 Halloween_",
		TopThree: top,
		Notes:    []string{"candy run", "carve pumpkin"},
		Habits: []models.Habit{
			{Name: "Walk"}, {Name: "Stretch"}, {Name: "Water"}, {Name: "10 min sweat"},
		},
	}
	return g, entries, top, blocks, sidebar
}

func TestLayout_ColorBlocks(t *testing.T) {
	g, entries, _, blocks, sidebar := halloweenDay(t)
	geo := DefaultGeometry()

	p, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	ops := p.ByLayer(plan.LayerBlock)
	if len(ops) != 3 {
		t.Fatalf("got %d block primitives, want 3", len(ops))
	}

	wantColors := []string{"#FFF200", "#B5E61D", "#FFAEC9"}
	wantY := []float64{
		geo.MarginTop,                   // 06:00, slot 0
		geo.MarginTop + 2*geo.RowHeight, // 07:00, slot 2
		geo.MarginTop + 4*geo.RowHeight, // 08:00, slot 4
	}
	wantH := []float64{2 * geo.RowHeight, 2 * geo.RowHeight, 7 * geo.RowHeight}

	for i, op := range ops {
		rect, ok := op.(plan.FillRect)
		if !ok {
			t.Fatalf("block primitive %d is %T, want FillRect", i, op)
		}
		if rect.Color.Hex() != wantColors[i] {
			t.Errorf("block %d color = %s, want %s", i, rect.Color.Hex(), wantColors[i])
		}
		if rect.Y != wantY[i] {
			t.Errorf("block %d y = %g, want %g", i, rect.Y, wantY[i])
		}
		if rect.H != wantH[i] {
			t.Errorf("block %d height = %g, want %g (one contiguous region)", i, rect.H, wantH[i])
		}
		if rect.X != geo.MarginLeft+geo.TimeColWidth {
			t.Errorf("block %d x = %g, want %g", i, rect.X, geo.MarginLeft+geo.TimeColWidth)
		}
		if rect.W != geo.ColorColWidth {
			t.Errorf("block %d width = %g, want %g", i, rect.W, geo.ColorColWidth)
		}
	}
}

func TestLayout_GridChrome(t *testing.T) {
	g, entries, _, blocks, sidebar := halloweenDay(t)
	geo := DefaultGeometry()

	p, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	labels := 0
	for _, op := range p.ByLayer(plan.LayerGrid) {
		if _, ok := op.(plan.Text); ok {
			labels++
		}
	}
	if labels != g.Count() {
		t.Errorf("got %d time labels, want %d", labels, g.Count())
	}
}

func TestLayout_TaskText(t *testing.T) {
	g, entries, _, blocks, sidebar := halloweenDay(t)
	geo := DefaultGeometry()

	p, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	ops := p.ByLayer(plan.LayerText)
	if len(ops) != 3 {
		t.Fatalf("got %d task runs, want 3", len(ops))
	}

	last := ops[2].(plan.Text)
	if last.S != "Costume Work" {
		t.Errorf("task text = %q, want %q (marker stripped)", last.S, "Costume Work")
	}
	// Anchored to the first row of the span regardless of its length.
	wantTop := geo.MarginTop + 4*geo.RowHeight
	if last.Y < wantTop || last.Y > wantTop+geo.RowHeight {
		t.Errorf("task baseline %g not inside its first row [%g, %g]", last.Y, wantTop, wantTop+geo.RowHeight)
	}
}

func TestLayout_Sidebar(t *testing.T) {
	g, entries, top, blocks, sidebar := halloweenDay(t)
	geo := DefaultGeometry()

	if len(top) != 1 || top[0] != "Costume Work" {
		t.Fatalf("top three = %v, want [Costume Work]", top)
	}

	p, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	var texts []plan.Text
	rules := 0
	for _, op := range p.ByLayer(plan.LayerSidebar) {
		switch v := op.(type) {
		case plan.Text:
			texts = append(texts, v)
		case plan.Line:
			rules++
		}
	}

	checkboxes := 0
	topLines := 0
	var sawDate, sawNote bool
	for _, txt := range texts {
		switch {
		case txt.S == "[ ]":
			checkboxes++
		case strings.HasPrefix(txt.S, "Date: "):
			sawDate = txt.S == "Date: _Fri 10/31 Halloween_"
		case txt.S == "candy run":
			sawNote = true
		case txt.S == "1. Costume Work" || txt.S == "2." || txt.S == "3.":
			topLines++
		}
	}

	if checkboxes != 4 {
		t.Errorf("got %d unchecked habit boxes, want 4", checkboxes)
	}
	if !sawDate {
		t.Error("date field missing or wrong")
	}
	if !sawNote {
		t.Error("first note line missing")
	}
	if topLines != 3 {
		t.Errorf("top-three area has %d lines, want exactly 3 (blanks included)", topLines)
	}

	// Date rule + 3 top-three rules + 12 notes rules + 4 habit rules.
	if want := 1 + 3 + geo.NotesLines + 4; rules != want {
		t.Errorf("got %d sidebar rules, want %d", rules, want)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	g, entries, _, blocks, sidebar := halloweenDay(t)
	geo := DefaultGeometry()

	a, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	b, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("second Layout failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different plans")
	}
}

func TestLayout_NotesOverflow(t *testing.T) {
	g, entries, _, blocks, sidebar := halloweenDay(t)
	geo := DefaultGeometry()

	var notes []string
	for i := 0; i < geo.NotesLines+1; i++ {
		notes = append(notes, "n")
	}
	sidebar.Notes = notes

	_, err := Layout(g, entries, blocks, sidebar, geo, Options{NotesOverflow: models.OverflowFail})
	if !errors.Is(err, ErrTooManyNotes) {
		t.Errorf("error = %v, want ErrTooManyNotes", err)
	}

	// Default policy cuts the extra line instead.
	p, err := Layout(g, entries, blocks, sidebar, geo, Options{})
	if err != nil {
		t.Fatalf("Layout with truncate failed: %v", err)
	}
	rendered := 0
	for _, op := range p.ByLayer(plan.LayerSidebar) {
		if txt, ok := op.(plan.Text); ok && txt.S == "n" {
			rendered++
		}
	}
	if rendered != geo.NotesLines {
		t.Errorf("rendered %d note lines, want the first %d", rendered, geo.NotesLines)
	}
}

func TestLayout_GeometryOverflow(t *testing.T) {
	g, entries, _, blocks, sidebar := halloweenDay(t)

	tests := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"negative time column", func(geo *Geometry) { geo.TimeColWidth = -1 }},
		{"too wide", func(geo *Geometry) { geo.SidebarWidth = 600 }},
		{"too tall", func(geo *Geometry) { geo.RowHeight = 40 }},
		{"no notes lines", func(geo *Geometry) { geo.NotesLines = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := DefaultGeometry()
			tt.mutate(&geo)
			p, err := Layout(g, entries, blocks, sidebar, geo, Options{})
			if !errors.Is(err, ErrLayoutOverflow) {
				t.Errorf("error = %v, want ErrLayoutOverflow", err)
			}
			if p != nil {
				t.Error("no plan must be returned on overflow")
			}
		})
	}
}

package preview

import (
	"strings"
	"testing"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/schedule"
)

func TestRender(t *testing.T) {
	g := grid.Default()

	entries, err := schedule.ParseLines([]string{"06:00|2|coffee", "08:00|1|*standup"}, g)
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	top, blocks, err := schedule.Derive(entries, nil, schedule.Options{})
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	out := Render(g, entries, blocks, models.SidebarModel{
		DateText: "Mon 11/03",
		TopThree: top,
		Notes:    []string{"remember the milk"},
		Habits:   []models.Habit{{Name: "Walk"}},
	})

	for _, want := range []string{
		"Date: Mon 11/03",
		"coffee",
		"standup",
		"1. ",
		"remember the milk",
		"[ ] Walk",
		"6:00",
		"7:30", // last row label
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}

	if lines := strings.Count(out, "\n"); lines < g.Count() {
		t.Errorf("preview has %d lines, want at least one per slot (%d)", lines, g.Count())
	}
}

// Package preview renders the parsed day as colored terminal output, a
// quick check before committing to paper.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(7)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	priorityStyle = lipgloss.NewStyle().Bold(true)
)

// Render prints the day grid with each entry's block color, followed by
// the sidebar content. Later entries paint over earlier ones, matching
// the page.
func Render(g *grid.Grid, entries []models.ScheduleEntry, blocks []models.ColorBlock, sidebar models.SidebarModel) string {
	cellColor := make(map[grid.Slot]models.Color)
	cellTask := make(map[grid.Slot]string)
	for i, e := range entries {
		if i < len(blocks) {
			for s := blocks[i].Start; s < blocks[i].End; s++ {
				cellColor[s] = blocks[i].LeftColor
			}
		}
		cellTask[e.Start] = e.Task
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Date: "+sidebar.DateText) + "\n\n")

	for slot := 0; slot < g.Count(); slot++ {
		cell := "  "
		if c, ok := cellColor[slot]; ok {
			cell = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
		}
		line := labelStyle.Render(g.Label(slot)) + cell
		if task, ok := cellTask[slot]; ok {
			line += " " + task
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Top 3 Things") + "\n")
	for i := 0; i < models.MaxPriorities; i++ {
		text := ""
		if i < len(sidebar.TopThree) {
			text = priorityStyle.Render(sidebar.TopThree[i])
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}

	if len(sidebar.Notes) > 0 {
		b.WriteString("\n" + headingStyle.Render("Notes") + "\n")
		for _, note := range sidebar.Notes {
			b.WriteString(note + "\n")
		}
	}

	b.WriteString("\n" + headingStyle.Render("Habits") + "\n")
	for _, h := range sidebar.Habits {
		box := "[ ]"
		if h.Checked {
			box = "[x]"
		}
		b.WriteString(box + " " + h.Name + "\n")
	}

	return b.String()
}

// Package schedule parses the compact pipe-delimited day notation and
// derives the color blocks and top-three list a page is built from.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
)

// PriorityMarker flags a task as one of the day's top three.
const PriorityMarker = "*"

// Parse errors. Time errors are delegated to the grid package.
var (
	ErrMalformedEntry = errors.New("malformed schedule entry")
	ErrInvalidSpan    = errors.New("invalid span")
)

// ParseLine parses one "HH:MM | span | task" line against the grid.
// A single leading PriorityMarker on the task flags it and is stripped.
func ParseLine(raw string, g *grid.Grid) (models.ScheduleEntry, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return models.ScheduleEntry{}, fmt.Errorf("%w: %q has %d fields, want 3 (start | span | task)", ErrMalformedEntry, raw, len(parts))
	}

	start, err := g.SlotOf(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("entry %q: %w", raw, err)
	}

	spanField := strings.TrimSpace(parts[1])
	span, err := strconv.Atoi(spanField)
	if err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("%w: %q is not an integer in entry %q", ErrInvalidSpan, spanField, raw)
	}
	if span < 1 {
		return models.ScheduleEntry{}, fmt.Errorf("%w: span %d must be at least 1 in entry %q", ErrInvalidSpan, span, raw)
	}
	if start+span > g.Count() {
		return models.ScheduleEntry{}, fmt.Errorf("%w: entry %q runs past the end of the day (%s)", ErrInvalidSpan, raw, g.TimeOf(g.Count()-1))
	}

	task := strings.TrimSpace(parts[2])
	priority := strings.HasPrefix(task, PriorityMarker)
	if priority {
		task = strings.TrimSpace(strings.TrimPrefix(task, PriorityMarker))
	}

	return models.ScheduleEntry{Start: start, Span: span, Task: task, Priority: priority}, nil
}

// ParseLines parses every line in input order. A single malformed line
// fails the whole batch; no partial result is returned, so a broken day
// file never produces an incomplete page.
func ParseLines(lines []string, g *grid.Grid) ([]models.ScheduleEntry, error) {
	entries := make([]models.ScheduleEntry, 0, len(lines))
	for i, line := range lines {
		entry, err := ParseLine(line, g)
		if err != nil {
			return nil, fmt.Errorf("schedule line %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

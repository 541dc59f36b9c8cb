// Package validation detects schedule conflicts the drawing pipeline
// would otherwise tolerate. Overlap is allowed by default (later blocks
// draw over earlier ones); this pass is the opt-in strict mode.
package validation

import (
	"fmt"

	"github.com/jharlow/planpage/internal/grid"
	"github.com/jharlow/planpage/internal/models"
)

// ConflictType represents the type of detected conflict
type ConflictType string

const (
	ConflictOverlappingEntries ConflictType = "overlapping_entries"
)

// Conflict represents one detected conflict between schedule entries
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // task names involved
	TimeRange   string   // human-readable overlap range
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks parsed schedule entries for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// CheckEntries reports every pair of entries whose slot ranges overlap.
// Touching ranges (one ends where the next starts) are not a conflict.
func (v *Validator) CheckEntries(entries []models.ScheduleEntry, g *grid.Grid) Result {
	var result Result

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.Start >= b.Start+b.Span || b.Start >= a.Start+a.Span {
				continue
			}
			lo := max(a.Start, b.Start)
			hi := min(a.Start+a.Span, b.Start+b.Span)
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOverlappingEntries,
				Description: fmt.Sprintf("%q (%s, %d slots) overlaps %q (%s, %d slots)",
					a.Task, g.TimeOf(a.Start), a.Span, b.Task, g.TimeOf(b.Start), b.Span),
				Items:     []string{a.Task, b.Task},
				TimeRange: fmt.Sprintf("%s-%s", g.TimeOf(lo), g.TimeOf(hi)),
			})
		}
	}

	return result
}

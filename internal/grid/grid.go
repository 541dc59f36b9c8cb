// Package grid models the fixed half-hour slot grid a planner page is
// laid out on. A grid is a pure function of its day window: it converts
// between HH:MM strings and slot indices and has no mutable state.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Grid errors.
var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrOutOfRange        = errors.New("time outside day window")
)

const (
	// SlotMinutes is the duration of one grid row.
	SlotMinutes = 30

	// DefaultDayStart and DefaultDayEnd bound the standard working window.
	DefaultDayStart = "06:00"
	DefaultDayEnd   = "19:30"
)

// Slot is an index into the half-hour grid; slot 0 is the first labeled row.
type Slot = int

// Grid converts between times and slot indices for one day window.
type Grid struct {
	startMin int
	endMin   int
}

// New builds a grid spanning dayStart to dayEnd, both rows included.
// Both bounds must sit on a half-hour boundary.
func New(dayStart, dayEnd string) (*Grid, error) {
	start, err := parseHalfHour(dayStart)
	if err != nil {
		return nil, err
	}
	end, err := parseHalfHour(dayEnd)
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("%w: day window %s-%s ends before it starts", ErrInvalidTimeFormat, dayStart, dayEnd)
	}
	return &Grid{startMin: start, endMin: end}, nil
}

// Default returns the standard 06:00-19:30 grid (28 slots).
func Default() *Grid {
	g, err := New(DefaultDayStart, DefaultDayEnd)
	if err != nil {
		panic(err) // the default bounds are compile-time constants
	}
	return g
}

// Count is the number of slots in the window, both bounds included.
func (g *Grid) Count() int {
	return (g.endMin-g.startMin)/SlotMinutes + 1
}

// SlotOf converts an HH:MM string to its slot index. The string must be
// exactly HH:MM with minutes 00 or 30, and fall inside the day window.
func (g *Grid) SlotOf(s string) (Slot, error) {
	min, err := parseHalfHour(s)
	if err != nil {
		return 0, err
	}
	if min < g.startMin || min > g.endMin {
		return 0, fmt.Errorf("%w: %s is outside %s-%s", ErrOutOfRange, s, g.TimeOf(0), g.TimeOf(g.Count()-1))
	}
	return (min - g.startMin) / SlotMinutes, nil
}

// TimeOf is the inverse of SlotOf: the 24-hour HH:MM label of a slot.
// It is total over [0, Count()-1].
func (g *Grid) TimeOf(slot Slot) string {
	min := g.startMin + slot*SlotMinutes
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Label returns the 12-hour row label without a leading zero, e.g. "6:00".
func (g *Grid) Label(slot Slot) string {
	min := g.startMin + slot*SlotMinutes
	h := (min / 60) % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, min%60)
}

func parseHalfHour(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hour in %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid minute in %q", ErrInvalidTimeFormat, s)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidTimeFormat, s)
	}
	if minute != 0 && minute != 30 {
		return 0, fmt.Errorf("%w: %q is not on a half-hour boundary", ErrInvalidTimeFormat, s)
	}
	return hour*60 + minute, nil
}

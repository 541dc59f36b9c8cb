package models

// MaxPriorities caps the sidebar's top-three list.
const MaxPriorities = 3

// ScheduleEntry is one parsed line of the day's schedule. Entries are
// immutable once parsed and keep their input order.
type ScheduleEntry struct {
	Start    int // slot index of the first occupied row
	Span     int // number of consecutive half-hour slots, >= 1
	Task     string
	Priority bool
}

// ColorBlock is the colored grid region derived from one schedule entry.
// End is exclusive: the block covers slots [Start, End).
type ColorBlock struct {
	Start     int
	End       int
	LeftColor Color
	// RightColor fills the second slim column. Derivation never sets it;
	// the right column is kept free for marking up the printed page.
	RightColor *Color
}

// PriorityList is the ordered top-three task list, at most MaxPriorities long.
type PriorityList []string

// Habit is one checklist row. Checked is always false for generated
// pages; the box is ticked by hand.
type Habit struct {
	Name    string
	Checked bool
}

// SidebarModel is everything drawn in the page's right column.
type SidebarModel struct {
	DateText string
	TopThree PriorityList
	Notes    []string
	Habits   []Habit
}

// OverflowPolicy decides what happens when input exceeds a fixed page
// area: more than three priority tasks, or more notes than ruled lines.
type OverflowPolicy string

const (
	// OverflowTruncate silently drops the excess.
	OverflowTruncate OverflowPolicy = "truncate"
	// OverflowFail aborts the run instead of dropping data.
	OverflowFail OverflowPolicy = "fail"
)

package schedule

import (
	"errors"
	"fmt"

	"github.com/jharlow/planpage/internal/models"
)

// ErrTooManyPriorities is returned under models.OverflowFail when more
// than models.MaxPriorities entries carry the priority marker.
var ErrTooManyPriorities = errors.New("too many priority entries")

// Options tunes derivation behavior.
type Options struct {
	// Overflow decides whether priority entries beyond the third are
	// silently dropped or fail the run. Empty means OverflowTruncate.
	Overflow models.OverflowPolicy
}

// Derive maps parsed entries to the page's derived model: one ColorBlock
// per entry with the palette cycled by entry position, and the top-three
// list of priority-flagged tasks in input order.
//
// Blocks are a pure 1:1 map of the entries. Overlapping spans are not
// merged or rejected here; later blocks simply draw over earlier ones.
func Derive(entries []models.ScheduleEntry, palette []models.Color, opts Options) (models.PriorityList, []models.ColorBlock, error) {
	if len(palette) == 0 {
		palette = models.DefaultPalette
	}

	blocks := make([]models.ColorBlock, 0, len(entries))
	var top models.PriorityList
	dropped := 0

	for i, e := range entries {
		blocks = append(blocks, models.ColorBlock{
			Start:     e.Start,
			End:       e.Start + e.Span,
			LeftColor: palette[i%len(palette)],
		})
		if e.Priority {
			if len(top) < models.MaxPriorities {
				top = append(top, e.Task)
			} else {
				dropped++
			}
		}
	}

	if dropped > 0 && opts.Overflow == models.OverflowFail {
		return nil, nil, fmt.Errorf("%w: %d flagged beyond the top %d", ErrTooManyPriorities, dropped, models.MaxPriorities)
	}

	return top, blocks, nil
}

// Package plan defines the flat, ordered list of draw primitives a
// rendered page is built from. Coordinates are absolute, in points,
// with the origin at the top-left of the page.
package plan

import "github.com/jharlow/planpage/internal/models"

// Layer tags a primitive with the logical page region it belongs to.
type Layer string

const (
	LayerGrid    Layer = "grid"
	LayerBlock   Layer = "block"
	LayerText    Layer = "text"
	LayerSidebar Layer = "sidebar"
)

// Primitive is one drawable instruction.
type Primitive interface {
	Layer() Layer
}

// FillRect is a filled rectangle.
type FillRect struct {
	X, Y, W, H float64
	Color      models.Color
	On         Layer
}

// Line is a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          models.Color
	On             Layer
}

// TextStyle selects the face a text run is drawn with.
type TextStyle struct {
	Size float64
	Bold bool
}

// Text is a single text run; Y is the baseline.
type Text struct {
	X, Y  float64
	S     string
	Style TextStyle
	On    Layer
}

func (p FillRect) Layer() Layer { return p.On }
func (p Line) Layer() Layer     { return p.On }
func (p Text) Layer() Layer     { return p.On }

// Plan is the write-once sequence of primitives handed to a render
// adapter. Order is draw order; later primitives paint over earlier ones.
type Plan struct {
	Ops []Primitive
}

// Append adds primitives in draw order.
func (p *Plan) Append(ops ...Primitive) {
	p.Ops = append(p.Ops, ops...)
}

// ByLayer returns the primitives on one layer, in draw order.
func (p *Plan) ByLayer(l Layer) []Primitive {
	var out []Primitive
	for _, op := range p.Ops {
		if op.Layer() == l {
			out = append(out, op)
		}
	}
	return out
}

// Package render writes a draw plan to a PDF page. It is the only part
// of the pipeline that touches the document backend; everything it draws
// comes fully positioned from the layout engine.
package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jharlow/planpage/internal/plan"
)

const fontFamily = "Helvetica"

// WritePDF draws every primitive of the plan, in order, onto a single
// US-letter portrait page at path. Point units with a top-left origin
// match the layout engine's coordinate system directly.
func WritePDF(p *plan.Plan, path string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, op := range p.Ops {
		switch v := op.(type) {
		case plan.FillRect:
			pdf.SetFillColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
			pdf.Rect(v.X, v.Y, v.W, v.H, "F")
		case plan.Line:
			pdf.SetDrawColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
			pdf.SetLineWidth(v.Width)
			pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
		case plan.Text:
			style := ""
			if v.Style.Bold {
				style = "B"
			}
			pdf.SetFont(fontFamily, style, v.Style.Size)
			pdf.Text(v.X, v.Y, v.S)
		default:
			return fmt.Errorf("unknown draw primitive %T", op)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

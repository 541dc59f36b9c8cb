package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jharlow/planpage/internal/models"
	"github.com/jharlow/planpage/internal/plan"
)

func TestWritePDF(t *testing.T) {
	p := &plan.Plan{}
	p.Append(
		plan.FillRect{X: 18, Y: 18, W: 15, H: 48, Color: models.Color{R: 0xFF, G: 0xF2}, On: plan.LayerBlock},
		plan.Line{X1: 18, Y1: 18, X2: 300, Y2: 18, Width: 0.25, Color: models.Color{R: 0x80, G: 0x80, B: 0x80}, On: plan.LayerGrid},
		plan.Text{X: 22, Y: 34, S: "6:00", Style: plan.TextStyle{Size: 8}, On: plan.LayerGrid},
		plan.Text{X: 400, Y: 34, S: "Top 3 Things", Style: plan.TextStyle{Size: 11, Bold: true}, On: plan.LayerSidebar},
	)

	path := filepath.Join(t.TempDir(), "day.pdf")
	if err := WritePDF(p, path); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not look like a PDF")
	}
}

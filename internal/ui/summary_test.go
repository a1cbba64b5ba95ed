package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/cncutils/gradfill/internal/gradient"
)

func TestRenderSummary(t *testing.T) {
	stats := gradient.Stats{
		Layers:         12,
		WallSegments:   340,
		MovesRewritten: 87,
		SubMoves:       512,
		LinesIn:        1000,
		LinesOut:       1425,
	}
	out := RenderSummary("benchy.gcode", "benchy_gradient.gcode", stats, 150*time.Millisecond)

	for _, want := range []string{
		"benchy.gcode",
		"benchy_gradient.gcode",
		"340",
		"moves rewritten",
		"1000 -> 1425",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "left untouched") {
		t.Error("summary warns without skipped moves")
	}
}

func TestRenderSummarySkippedWarning(t *testing.T) {
	out := RenderSummary("a.gcode", "b.gcode", gradient.Stats{Skipped: 3}, time.Second)
	if !strings.Contains(out, "3 infill move(s) left untouched") {
		t.Errorf("summary missing skip warning:\n%s", out)
	}
}

func TestRenderPatternTable(t *testing.T) {
	out := RenderPatternTable()
	for _, name := range gradient.PatternNames() {
		if !strings.Contains(out, name) {
			t.Errorf("pattern table missing %q", name)
		}
	}
	if !strings.Contains(out, gradient.KindUnsupported.String()) {
		t.Error("pattern table does not flag unsupported patterns")
	}
}

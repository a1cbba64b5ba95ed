// Package ui renders progress and run summaries on the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/cncutils/gradfill/internal/gradient"
)

// RenderSummary formats the post-run report shown on stderr.
func RenderSummary(input, outPath string, stats gradient.Stats, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("gradient infill applied"))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n",
			styles.Label.Render(fmt.Sprintf("%-16s", label)),
			styles.Value.Render(value)))
	}

	row("input", input)
	row("output", outPath)
	row("layers", fmt.Sprintf("%d", stats.Layers))
	row("wall segments", fmt.Sprintf("%d", stats.WallSegments))
	row("moves rewritten", fmt.Sprintf("%d", stats.MovesRewritten))
	row("sub-moves", fmt.Sprintf("%d", stats.SubMoves))
	row("lines", fmt.Sprintf("%d -> %d", stats.LinesIn, stats.LinesOut))
	row("elapsed", elapsed.Round(time.Millisecond).String())

	if stats.Skipped > 0 {
		b.WriteString(styles.Warning.Render(
			fmt.Sprintf("%d infill move(s) left untouched: no wall segments to measure against", stats.Skipped)))
		b.WriteByte('\n')
	}

	return styles.Border.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderPatternTable formats the supported-pattern listing for the
// patterns subcommand.
func RenderPatternTable() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("infill patterns"))
	b.WriteByte('\n')
	for _, name := range gradient.PatternNames() {
		kind := gradient.KindForPattern(name)
		line := fmt.Sprintf("%s %s",
			styles.Value.Render(fmt.Sprintf("%-16s", name)),
			styles.Label.Render(kind.String()))
		if kind == gradient.KindUnsupported {
			line = fmt.Sprintf("%s %s",
				styles.Dim.Render(fmt.Sprintf("%-16s", name)),
				styles.Warning.Render(kind.String()))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Errorf prints a styled fatal message line.
func Errorf(format string, args ...any) string {
	return styles.Error.Render("error: " + fmt.Sprintf(format, args...))
}

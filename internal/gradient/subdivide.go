package gradient

import (
	"github.com/cncutils/gradfill/internal/gcode"
	"github.com/cncutils/gradfill/internal/geometry"
)

// rewriteLinear splits a long straight infill move into equal-length
// sub-moves, each extruded at the flow multiplier for its own midpoint's
// wall distance, plus one corrective move closing the remaining partial
// distance. Moves shorter than two steps get the short-distance flow on a
// single rewritten line instead.
func (e *Engine) rewriteLinear(line gcode.Line, cur geometry.Point, eVal float64, st *state, stats *Stats) ([]string, bool) {
	length := geometry.Dist(st.last, cur)
	if length == 0 {
		// Degenerate move, no direction to walk along.
		stats.Skipped++
		return nil, false
	}

	stepLen := e.opts.Thickness / float64(e.opts.Discretization)
	steps := int(length / stepLen)
	if steps < 2 {
		stats.MovesRewritten++
		return []string{line.RewriteMove(eVal * e.opts.shortFrac(), 0)}, true
	}

	var out []string
	if line.Has('F') {
		// The move carried its own feed; restore it up front so the
		// sub-moves inherit it when speed gradation is off.
		out = append(out, gcode.FeedCommand(st.feed))
	}

	dir := geometry.Point{
		X: (cur.X - st.last.X) / length * stepLen,
		Y: (cur.Y - st.last.Y) / length * stepLen,
	}
	perStep := eVal * stepLen / length

	pos := st.last
	for i := 0; i < steps; i++ {
		end := geometry.Point{X: pos.X + dir.X, Y: pos.Y + dir.Y}
		dist, _ := geometry.NearestDist(geometry.Segment{A: pos, B: end}, st.walls)
		flow := FlowMultiplier(dist, e.opts.Thickness, e.opts.maxFrac(), e.opts.minFrac())
		var feed float64
		if e.opts.GradualSpeed && st.feed > 0 {
			feed = e.opts.feedFor(st.feed, flow)
		}
		out = append(out, gcode.ExtrusionCommand(end.X, end.Y, perStep*flow, feed))
		pos = end
	}

	// Closing partial segment. Always extruded at max flow regardless of
	// its own wall distance; its feed is clamped on the low side only.
	ratio := geometry.Dist(pos, cur) / length
	var feed float64
	if e.opts.GradualSpeed && st.feed > 0 {
		feed = st.feed / e.opts.maxFrac()
		if lo := st.feed * e.opts.MinOverSpeed / 100; feed < lo {
			feed = lo
		}
	}
	out = append(out, gcode.ExtrusionCommand(cur.X, cur.Y, ratio*eVal*e.opts.maxFrac(), feed))

	stats.MovesRewritten++
	stats.SubMoves += steps + 1
	return out, true
}

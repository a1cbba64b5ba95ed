// Package gradient rewrites infill extrusion so flow tapers with distance
// from the printed walls.
package gradient

import (
	"errors"
	"fmt"

	"github.com/cncutils/gradfill/internal/gcode"
	"github.com/cncutils/gradfill/internal/geometry"
)

// ErrAbsoluteExtrusion is returned when the program preamble selects
// absolute extrusion (M82). The rewrite only works on relative E values.
var ErrAbsoluteExtrusion = errors.New("program uses absolute extrusion (M82); slice with relative extrusion enabled")

// Options is the immutable per-run configuration of the engine. Flow and
// speed values are percentages, matching the slicer-facing settings.
type Options struct {
	Thickness      float64 // gradient band width in mm
	Discretization int     // sub-segments per band, linear kind only
	MaxFlow        float64
	MinFlow        float64
	ShortFlow      float64 // for linear moves too short to subdivide
	GradualSpeed   bool
	MaxOverSpeed   float64
	MinOverSpeed   float64
	Boundary       Boundary
	Kind           Kind
}

// Stats summarizes one processing run.
type Stats struct {
	Layers         int
	WallSegments   int
	MovesRewritten int
	SubMoves       int
	Skipped        int // infill moves left alone for lack of a gradient reference
	LinesIn        int
	LinesOut       int
}

// state is the mutable single-pass parser context. One instance per run,
// never shared.
type state struct {
	section Section
	last    geometry.Point
	walls   []geometry.Segment
	feed    float64
}

// The head position before the first move is parked far outside any
// printable area.
const sentinelCoord = -10000

// Engine performs the gradient rewrite over a full motion program.
type Engine struct {
	opts     Options
	progress func(done, total int)
}

// NewEngine creates an engine for one or more runs with fixed options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// OnProgress registers a callback invoked after each input line.
func (e *Engine) OnProgress(fn func(done, total int)) {
	e.progress = fn
}

// Process rewrites the program in a single ordered pass. Lines that take
// no part in the gradient come back byte-identical; rewritten moves may
// expand into several output lines. On error no output is returned.
func (e *Engine) Process(lines []string) ([]string, Stats, error) {
	var stats Stats
	if err := checkPreamble(lines); err != nil {
		return nil, stats, err
	}

	st := state{last: geometry.Point{X: sentinelCoord, Y: sentinelCoord}}
	out := make([]string, 0, len(lines))
	for i, raw := range lines {
		emitted, err := e.processLine(raw, &st, &stats)
		if err != nil {
			return nil, stats, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, emitted...)
		if e.progress != nil {
			e.progress(i+1, len(lines))
		}
	}
	stats.LinesIn = len(lines)
	stats.LinesOut = len(out)
	return out, stats, nil
}

// checkPreamble scans the lines before the first layer for the extrusion
// mode. M82 without a later M83 means absolute E values.
func checkPreamble(lines []string) error {
	relative := true
	for _, raw := range lines {
		if gcode.IsLayerStart(raw) {
			break
		}
		line, err := gcode.Parse(raw)
		if err != nil {
			continue // surfaces with a line number in the main pass
		}
		switch line.Word {
		case "M82":
			relative = false
		case "M83":
			relative = true
		}
	}
	if !relative {
		return ErrAbsoluteExtrusion
	}
	return nil
}

// processLine applies the classifier transitions in priority order, then
// the collector and the infill rewrite, and finally tracks the head
// position. Marker lines return early and are never treated as moves.
func (e *Engine) processLine(raw string, st *state, stats *Stats) ([]string, error) {
	switch {
	case gcode.IsLayerStart(raw):
		st.walls = nil
		stats.Layers++
		return []string{raw}, nil
	case gcode.IsInnerWallStart(raw):
		st.section = SectionInnerWall
		return []string{raw}, nil
	case gcode.IsOuterWallStart(raw):
		st.section = SectionOuterWall
		return []string{raw}, nil
	case gcode.IsInfillStart(raw):
		st.section = SectionInfill
		return []string{raw}, nil
	}

	line, err := gcode.Parse(raw)
	if err != nil {
		return nil, err
	}

	out := []string{raw}

	if st.section == e.opts.Boundary.Section() && line.IsExtrusionMove() {
		st.walls = append(st.walls, geometry.Segment{A: st.last, B: pointOf(line)})
		stats.WallSegments++
	}

	if st.section == SectionInfill {
		if gcode.HasComment(raw) {
			// Any commented line ends the infill section and is passed
			// through untouched, extrusion move or not.
			st.section = SectionNone
		} else {
			if line.Word == "G1" {
				if f, ok := line.Value('F'); ok {
					st.feed = f
				}
			}
			if line.IsExtrusionMove() {
				if rewritten, ok := e.rewriteInfill(line, st, stats); ok {
					out = rewritten
				}
			}
		}
	}

	if line.IsMove() {
		st.last = pointOf(line)
	}
	return out, nil
}

// rewriteInfill dispatches an infill extrusion move on the infill kind.
// ok is false when the move must pass through untouched.
func (e *Engine) rewriteInfill(line gcode.Line, st *state, stats *Stats) ([]string, bool) {
	if len(st.walls) == 0 {
		// No wall segments collected this layer: nothing to measure
		// against, leave the move alone.
		stats.Skipped++
		return nil, false
	}
	cur := pointOf(line)
	eVal, _ := line.Value('E')

	switch e.opts.Kind {
	case KindLinear:
		return e.rewriteLinear(line, cur, eVal, st, stats)
	case KindSmallSegments:
		return e.rewriteSmallSegments(line, cur, eVal, st, stats)
	default:
		// Unsupported kinds are rejected before processing starts.
		return nil, false
	}
}

// rewriteSmallSegments scales the move's extrusion by the flow multiplier
// at its own midpoint. Moves beyond the gradient band still get the
// minimum multiplier applied.
func (e *Engine) rewriteSmallSegments(line gcode.Line, cur geometry.Point, eVal float64, st *state, stats *Stats) ([]string, bool) {
	dist, ok := geometry.NearestDist(geometry.Segment{A: st.last, B: cur}, st.walls)
	if !ok {
		stats.Skipped++
		return nil, false
	}
	flow := FlowMultiplier(dist, e.opts.Thickness, e.opts.maxFrac(), e.opts.minFrac())
	var feed float64
	if e.opts.GradualSpeed && st.feed > 0 {
		feed = e.opts.feedFor(st.feed, flow)
	}
	stats.MovesRewritten++
	return []string{line.RewriteMove(eVal * flow, feed)}, true
}

// pointOf reads the target of a move line. Callers have already checked
// that X and Y are present.
func pointOf(line gcode.Line) geometry.Point {
	x, _ := line.Value('X')
	y, _ := line.Value('Y')
	return geometry.Point{X: x, Y: y}
}

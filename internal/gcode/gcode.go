// Package gcode tokenizes motion-program lines and formats rewritten ones.
package gcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker prefixes emitted by Cura between sections.
const (
	LayerMarker     = ";LAYER:"
	InnerWallMarker = ";TYPE:WALL-INNER"
	OuterWallMarker = ";TYPE:WALL-OUTER"
	InfillMarker    = ";TYPE:FILL"
)

// Field is a single letter-keyed value on a command line, e.g. "X12.5".
type Field struct {
	Letter byte
	Value  float64
	Raw    string
}

// Line is one tokenized motion-program line. Fields preserve source order.
// Word is the leading command word ("G1", "G0", "M83", ...), empty for
// comments and blank lines.
type Line struct {
	Raw    string
	Word   string
	Fields []Field
}

// Parse splits a line into its command word and letter→value fields.
// Tokens that look like fields (letter followed by a number) but fail to
// parse produce an error naming the bad token; anything after a ';' is
// left untokenized.
func Parse(raw string) (Line, error) {
	l := Line{Raw: raw}

	code := raw
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	tokens := strings.Fields(code)
	if len(tokens) == 0 {
		return l, nil
	}

	l.Word = tokens[0]
	strict := l.Word == "G0" || l.Word == "G1"
	for _, tok := range tokens[1:] {
		letter := tok[0]
		if letter < 'A' || letter > 'Z' {
			continue
		}
		v, err := strconv.ParseFloat(tok[1:], 64)
		if err != nil {
			// Only motion commands are held to field syntax; free text on
			// M117 and friends is ignored.
			if strict {
				return l, fmt.Errorf("bad field %q in %q", tok, raw)
			}
			continue
		}
		l.Fields = append(l.Fields, Field{Letter: letter, Value: v, Raw: tok})
	}
	return l, nil
}

// Has reports whether the line carries a field with the given letter.
func (l Line) Has(letter byte) bool {
	for _, f := range l.Fields {
		if f.Letter == letter {
			return true
		}
	}
	return false
}

// Value returns the value of the first field with the given letter.
func (l Line) Value(letter byte) (float64, bool) {
	for _, f := range l.Fields {
		if f.Letter == letter {
			return f.Value, true
		}
	}
	return 0, false
}

// IsMove reports whether the line is a G0/G1 carrying X and Y, i.e. it
// changes the tracked head position.
func (l Line) IsMove() bool {
	return (l.Word == "G0" || l.Word == "G1") && l.Has('X') && l.Has('Y')
}

// IsExtrusionMove reports whether the line is a G1 with X, Y and E fields.
func (l Line) IsExtrusionMove() bool {
	return l.Word == "G1" && l.Has('X') && l.Has('Y') && l.Has('E')
}

// IsLayerStart reports whether the line begins a new layer.
func IsLayerStart(raw string) bool { return strings.HasPrefix(raw, LayerMarker) }

// IsInnerWallStart reports whether the line begins an inner-wall section.
func IsInnerWallStart(raw string) bool { return strings.HasPrefix(raw, InnerWallMarker) }

// IsOuterWallStart reports whether the line begins an outer-wall section.
func IsOuterWallStart(raw string) bool { return strings.HasPrefix(raw, OuterWallMarker) }

// IsInfillStart reports whether the line begins an infill section.
func IsInfillStart(raw string) bool { return strings.HasPrefix(raw, InfillMarker) }

// HasComment reports whether the line contains a comment marker anywhere.
func HasComment(raw string) bool { return strings.Contains(raw, ";") }

// ExtrusionCommand formats a rewritten sub-move. Coordinates use three
// decimals, extrusion five; feed is appended integer-valued when fed > 0.
func ExtrusionCommand(x, y, e float64, feed float64) string {
	if feed > 0 {
		return fmt.Sprintf("G1 X%.3f Y%.3f E%.5f F%d", x, y, e, int(feed))
	}
	return fmt.Sprintf("G1 X%.3f Y%.3f E%.5f", x, y, e)
}

// FeedCommand formats a bare feed-rate statement.
func FeedCommand(feed float64) string {
	return fmt.Sprintf("G1 F%g", feed)
}

// RewriteMove reproduces the line with its E field's value replaced, all
// other tokens verbatim and in order. When feed > 0 the F field is
// replaced too, or appended if the line carried none. A trailing comment
// is carried over untouched.
func (l Line) RewriteMove(e, feed float64) string {
	code := l.Raw
	var comment string
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code, comment = code[:i], code[i:]
	}
	tokens := strings.Fields(code)
	sawF := false
	for i, tok := range tokens {
		if i == 0 {
			continue
		}
		switch tok[0] {
		case 'E':
			tokens[i] = fmt.Sprintf("E%.5f", e)
		case 'F':
			if feed > 0 {
				tokens[i] = fmt.Sprintf("F%d", int(feed))
				sawF = true
			}
		}
	}
	out := strings.Join(tokens, " ")
	if feed > 0 && !sawF {
		out += fmt.Sprintf(" F%d", int(feed))
	}
	if comment != "" {
		out += " " + comment
	}
	return out
}

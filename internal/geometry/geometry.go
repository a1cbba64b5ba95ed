package geometry

import "math"

// Point is a position in the printer's XY plane, in millimetres.
type Point struct {
	X, Y float64
}

// Segment is a directed straight move between two points.
type Segment struct {
	A, B Point
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Length returns the segment's euclidean length.
func (s Segment) Length() float64 {
	return Dist(s.A, s.B)
}

// DistToPoint returns the distance from p to the closest location on the
// finite segment. The projection scalar is clamped to [0,1] so endpoints
// bound the result. A zero-length segment is treated as a single point.
func (s Segment) DistToPoint(p Point) float64 {
	px := s.B.X - s.A.X
	py := s.B.Y - s.A.Y
	norm := px*px + py*py
	if norm == 0 {
		return Dist(s.A, p)
	}
	u := ((p.X-s.A.X)*px + (p.Y-s.A.Y)*py) / norm
	if u > 1 {
		u = 1
	} else if u < 0 {
		u = 0
	}
	closest := Point{X: s.A.X + u*px, Y: s.A.Y + u*py}
	return Dist(closest, p)
}

// NearestDist returns the distance from the midpoint of s to the closest
// segment in walls. ok is false when walls is empty, in which case there
// is no gradient reference and the caller should leave the move alone.
func NearestDist(s Segment, walls []Segment) (dist float64, ok bool) {
	if len(walls) == 0 {
		return 0, false
	}
	mid := s.Midpoint()
	min := math.Inf(1)
	for _, w := range walls {
		if d := w.DistToPoint(mid); d < min {
			min = d
		}
	}
	return min, true
}

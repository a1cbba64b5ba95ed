package gradient

// FlowMultiplier maps a wall distance onto an extrusion multiplier. The
// mapping is inverse: distance 0 yields maxFrac, distance thickness (and
// anything beyond) yields minFrac.
func FlowMultiplier(dist, thickness, maxFrac, minFrac float64) float64 {
	if dist >= thickness {
		return minFrac
	}
	return maxFrac + dist*(minFrac-maxFrac)/thickness
}

// maxFrac/minFrac/shortFrac return the configured flow percentages as
// fractions.
func (o Options) maxFrac() float64   { return o.MaxFlow / 100 }
func (o Options) minFrac() float64   { return o.MinFlow / 100 }
func (o Options) shortFrac() float64 { return o.ShortFlow / 100 }

// feedFor derives a gradated feed rate from a flow multiplier: faster
// where less material flows, clamped into the over-speed window. A zero
// multiplier (min flow of 0 beyond the gradient) pins the feed to the
// upper bound instead of dividing by zero.
func (o Options) feedFor(base, flow float64) float64 {
	var feed float64
	if flow == 0 {
		feed = base * o.MaxOverSpeed / 100
	} else {
		feed = base / flow
	}
	if hi := base * o.MaxOverSpeed / 100; feed > hi {
		feed = hi
	}
	if lo := base * o.MinOverSpeed / 100; feed < lo {
		feed = lo
	}
	return feed
}

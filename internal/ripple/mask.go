package ripple

import "math"

// MaxCorner keeps the rounded square from degenerating into a circle.
const MaxCorner = 0.49

// CornerFraction converts a 0..1 corner percentage into the corner radius used
// by the mask, as a fraction of the marker edge.
func CornerFraction(cornerPct float64) float64 {
	c := cornerPct * 0.5
	if c < 0 {
		return 0
	}
	if c > MaxCorner {
		return MaxCorner
	}
	return c
}

// InsideRoundedSquare tests a local coordinate in [-0.5, 0.5]² against a unit
// square whose corners are rounded by corner. The first test rejects anything
// outside the unrounded square; the second trims the corner arcs.
//
// The first test compares against corner, not 0, on purpose. Against 0 it
// would clip to a square of edge 1-2*corner and the arc test could never
// reject anything, so markers would lose both their rounding and their full
// edge. Corner 0 still yields the plain unit square.
func InsideRoundedSquare(u, v, corner float64) bool {
	if corner < 0 {
		corner = 0
	} else if corner > MaxCorner {
		corner = MaxCorner
	}
	ax := math.Abs(u) - 0.5 + corner
	ay := math.Abs(v) - 0.5 + corner
	if math.Max(ax, ay) > corner {
		return false
	}
	qx := math.Max(ax, 0)
	qy := math.Max(ay, 0)
	return math.Hypot(qx, qy)-corner <= 0
}

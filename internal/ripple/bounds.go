package ripple

import (
	"errors"
	"math"

	"ripplefield/internal/core"
)

// ErrNoPoints is returned when a point set is empty.
var ErrNoPoints = errors.New("point set is empty")

// ComputeViewbox returns the bounding rectangle of points padded by the larger
// of the maximum point radius and one data unit, so even a single point
// yields a strictly positive area.
func ComputeViewbox(points []core.Point) (core.Viewbox, error) {
	if len(points) == 0 {
		return core.Viewbox{}, ErrNoPoints
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	maxR := 0.0
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		maxR = math.Max(maxR, p.R)
	}
	pad := math.Max(maxR, 1)
	return core.Viewbox{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}, nil
}

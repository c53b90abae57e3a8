package core

// Point is a single data-space sample. R is an optional influence radius;
// payloads that omit it decode to zero.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r,omitempty"`
}

// Viewbox is the padded bounding rectangle of a point set, in data units.
type Viewbox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (v Viewbox) Contains(x, y float64) bool {
	return x >= v.X && x <= v.X+v.Width && y >= v.Y && y <= v.Y+v.Height
}

// Size describes the dimensions of a render surface in pixels.
type Size struct {
	W int
	H int
}

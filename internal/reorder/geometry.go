package reorder

// Point is a location in list content coordinates. Y grows downward.
// Units are abstract: the terminal list host maps one cell row to one
// unit, but hosts with taller rows may use any positive scale.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in list content coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// MidY returns the vertical center of the rectangle.
func (r Rect) MidY() float64 {
	return r.Y + r.Height/2
}

// Contains reports whether p lies within the rectangle.
// The bottom and right edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.MaxY()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

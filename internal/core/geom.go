// Package core provides the dependency-free primitives shared by the simulation
// and the terminal platform: geometry, input actions, and the character screen.
package core

// Box is a centered axis-aligned box in world units.
type Box struct {
	X, Y float64 // Center
	W, H float64 // Full extent
}

// NewBox creates a box centered on (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Scale returns the box with both extents multiplied by f, keeping the center.
func (b Box) Scale(f float64) Box {
	return Box{X: b.X, Y: b.Y, W: b.W * f, H: b.H * f}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H/2 }

// Overlaps reports whether the boxes overlap. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	dx := b.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := b.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < (b.W+o.W)/2 && dy < (b.H+o.H)/2
}

// Rect is an integer rectangle in screen cells, anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

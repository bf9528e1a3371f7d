// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// Every physical entity in the simulation carries one.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal midpoint.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical midpoint.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap, which lets a body rest
// exactly on top of a platform.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	x := min(b.X, o.X)
	y := min(b.Y, o.Y)
	return Box{
		X: x,
		Y: y,
		W: max(b.Right(), o.Right()) - x,
		H: max(b.Bottom(), o.Bottom()) - y,
	}
}

// Valid reports whether the box has strictly positive dimensions.
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0
}

// Vec is a 2D vector, used for velocities.
type Vec struct {
	X, Y float64
}

// Rect represents a cell-aligned rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampInt restricts an integer to be within [lo, hi].
func ClampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of a float.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

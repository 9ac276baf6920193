// Package core provides fundamental types and utilities shared by the game
// packages and the terminal platform. It has no external dependencies (in
// particular no Bubble Tea) so game logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box in pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// MovedTo returns a copy of the rectangle with its top-left corner at (x, y).
func (r Rect) MovedTo(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) lies in [X, X+W) × [Y, Y+H).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Corners returns the four corner pixels that belong to the rectangle:
// top-left, top-right, bottom-left and bottom-right. The far corners are
// inset by one pixel so they stay inside the box.
func (r Rect) Corners() [4][2]int {
	return [4][2]int{
		{r.X, r.Y},
		{r.Right() - 1, r.Y},
		{r.X, r.Bottom() - 1},
		{r.Right() - 1, r.Bottom() - 1},
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// RectF is an axis-aligned rectangle in logical canvas units.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether r strictly overlaps the horizontal span (left, right).
// Touching edges do not count.
func (r RectF) OverlapsX(left, right float64) bool {
	return r.Right() > left && r.X < right
}

// Intersects returns true if the two rectangles strictly overlap.
func (r RectF) Intersects(other RectF) bool {
	if !r.OverlapsX(other.X, other.Right()) {
		return false
	}
	return r.Bottom() > other.Y && r.Y < other.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Rotate rotates the point (x, y) around the origin by angle radians.
// Positive angles turn clockwise on a y-down canvas.
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

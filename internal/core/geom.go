// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
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

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grow returns r expanded by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return NewRect(r.X-n, r.Y-n, r.W+2*n, r.H+2*n)
}

// RectF is an axis-aligned box in playfield pixels.
// Playfield coordinates grow right (x) and down (y), like a 2D canvas.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new playfield rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal spans of r and other overlap.
// Touching edges do not count as overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// Size is a width/height pair in whole playfield pixels.
type Size struct {
	W, H int
}

// PlayfieldSize derives the fixed playfield from a viewport width:
// width = min(maxWidth, viewportW*ratio), height = width*aspect.
// Both are truncated to whole pixels, matching how a canvas stores its size.
func PlayfieldSize(viewportW int, maxWidth int, ratio, aspect float64) Size {
	w := int(math.Min(float64(maxWidth), float64(viewportW)*ratio))
	if w < 1 {
		w = 1
	}
	h := int(float64(w) * aspect)
	if h < 1 {
		h = 1
	}
	return Size{W: w, H: h}
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

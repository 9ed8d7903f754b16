// Package core provides fundamental types and utilities for the game:
// screen buffer, input frames, and geometry. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and
// testable.
package core

import "math"

// Vec2 is a point or direction in continuous play-field units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector's magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns a unit vector pointing in v's direction.
// The zero vector normalizes to itself.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(other Vec2) float64 {
	return v.Sub(other).Len()
}

// RectF is an axis-aligned box in play-field units.
type RectF struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the box.
func (r RectF) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the box's center point.
func (r RectF) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Rect represents an axis-aligned cell rectangle used for screen layout.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Projection maps the continuous play field onto a terminal cell grid and
// back. The renderer uses it to place entities; the input layer uses it to
// translate clicked cells into field coordinates.
type Projection struct {
	fieldW, fieldH float64
	cols, rows     int
}

// NewProjection creates a projection of a fieldW×fieldH play field onto a
// cols×rows cell grid. Degenerate grid sizes are clamped to 1 so the
// projection stays usable during extreme terminal resizes.
func NewProjection(fieldW, fieldH float64, cols, rows int) Projection {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Projection{fieldW: fieldW, fieldH: fieldH, cols: cols, rows: rows}
}

// Cell returns the cell containing the field point. Points outside the
// field map to the nearest edge cell.
func (p Projection) Cell(pt Vec2) (int, int) {
	x := int(pt.X / p.fieldW * float64(p.cols))
	y := int(pt.Y / p.fieldH * float64(p.rows))
	return Clamp(x, 0, p.cols-1), Clamp(y, 0, p.rows-1)
}

// Field returns the field coordinates of a cell's center.
func (p Projection) Field(cellX, cellY int) Vec2 {
	return Vec2{
		X: (float64(cellX) + 0.5) / float64(p.cols) * p.fieldW,
		Y: (float64(cellY) + 0.5) / float64(p.rows) * p.fieldH,
	}
}

// CellRect projects a field box to the covering cell rectangle
// (at least 1×1 so small entities stay visible).
func (p Projection) CellRect(r RectF) Rect {
	x0, y0 := p.Cell(Vec2{r.X, r.Y})
	x1, y1 := p.Cell(Vec2{r.X + r.W, r.Y + r.H})
	return NewRect(x0, y0, x1-x0+1, y1-y0+1)
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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

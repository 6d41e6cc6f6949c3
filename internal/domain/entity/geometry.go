// Package entity defines the docking tree: tabs, tab containers, split
// containers and the root slots that own them. These are pure Go types with
// no toolkit dependencies.
package entity

// Point is a position in some coordinate space (container-local or screen).
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

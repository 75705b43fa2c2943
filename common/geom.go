package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned rectangle in screen coordinates (y grows down).
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// BB converts a Rect into a chipmunk bounding box. Screen coordinates are
// y-down, so B holds the top edge and T the bottom edge; Overlap and
// Contains only compare matching fields, so the flipped axis is harmless.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// Center returns the rect's center point.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Expand grows the rect by m units on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Inset shrinks the rect by m units on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

// Overlap reports whether two boxes intersect. Comparisons are strict so
// rects that merely share an edge do not count as overlapping.
func Overlap(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// Contains reports whether inner lies entirely within outer.
func Contains(outer, inner cp.BB) bool {
	return inner.L >= outer.L && inner.R <= outer.R && inner.B >= outer.B && inner.T <= outer.T
}

// RayHit projects p onto the ray from origin along angle and reports whether
// the forward projection lies inside (0, length) with perpendicular distance
// below halfWidth.
func RayHit(p, origin cp.Vector, angle, length, halfWidth float64) bool {
	dir := cp.ForAngle(angle)
	rel := p.Sub(origin)
	along := rel.Dot(dir)
	if along <= 0 || along >= length {
		return false
	}
	return math.Abs(rel.Cross(dir)) < halfWidth
}

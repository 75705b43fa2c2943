package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestOverlap(t *testing.T) {
	cases := []struct {
		name string
		a    Rect
		b    Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 10, 10}, true},
		{"separate", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
		{"shared_vertical_edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"shared_horizontal_edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"shared_corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlap(c.a.BB(), c.b.BB()); got != c.want {
				t.Fatalf("Overlap(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			// overlap is symmetric
			if got := Overlap(c.b.BB(), c.a.BB()); got != c.want {
				t.Fatalf("Overlap(%v, %v) = %v, want %v", c.b, c.a, got, c.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	outer := Rect{0, 0, 100, 100}.BB()
	if !Contains(outer, Rect{10, 10, 20, 20}.BB()) {
		t.Fatalf("expected inner rect to be contained")
	}
	if Contains(outer, Rect{90, 90, 20, 20}.BB()) {
		t.Fatalf("rect poking out should not be contained")
	}
	// sharing the boundary still counts
	if !Contains(outer, outer) {
		t.Fatalf("a box should contain itself")
	}
}

func TestRectInsetExpand(t *testing.T) {
	r := Rect{X: 170, Y: 130, W: 300, H: 220}

	in := r.Inset(20)
	if in.X != 190 || in.Y != 150 || in.W != 260 || in.H != 180 {
		t.Fatalf("Inset(20) = %+v", in)
	}

	ex := r.Expand(200)
	if ex.X != -30 || ex.Y != -70 || ex.W != 700 || ex.H != 620 {
		t.Fatalf("Expand(200) = %+v", ex)
	}

	c := r.Center()
	if c.X != 320 || c.Y != 240 {
		t.Fatalf("Center() = %+v", c)
	}
}

func TestRayHit(t *testing.T) {
	origin := cp.Vector{X: 0, Y: 0}

	cases := []struct {
		name      string
		p         cp.Vector
		angle     float64
		length    float64
		halfWidth float64
		want      bool
	}{
		{"ahead_on_axis", cp.Vector{X: 50, Y: 0}, 0, 100, 10, true},
		{"ahead_within_halfwidth", cp.Vector{X: 50, Y: 8}, 0, 100, 10, true},
		{"ahead_outside_halfwidth", cp.Vector{X: 50, Y: 12}, 0, 100, 10, false},
		{"behind_origin", cp.Vector{X: -10, Y: 0}, 0, 100, 10, false},
		{"beyond_length", cp.Vector{X: 150, Y: 0}, 0, 100, 10, false},
		{"at_origin", cp.Vector{X: 0, Y: 0}, 0, 100, 10, false},
		{"diagonal_hit", cp.Vector{X: 30, Y: 30}, math.Pi / 4, 100, 5, true},
		{"straight_down", cp.Vector{X: 0, Y: 40}, math.Pi / 2, 100, 5, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RayHit(c.p, origin, c.angle, c.length, c.halfWidth); got != c.want {
				t.Fatalf("RayHit(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp(-3,0,10) = %v", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("Clamp(42,0,10) = %v", got)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0,10,0.5) = %v", got)
	}
}

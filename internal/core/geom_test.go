package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), false},
		{"disjoint", NewRect(0, 0, 5, 5), NewRect(6, 6, 2, 2), false},
		{"same rect", NewRect(1, 1, 4, 4), NewRect(1, 1, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() not symmetric: = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 4, 5, true},
		{"top-left corner", 2, 3, true},
		{"bottom-right inside", 5, 7, true},
		{"right edge excluded", 6, 3, false},
		{"bottom edge excluded", 2, 8, false},
		{"left of rect", 1, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	sum := Vec2{1, 2}.Add(Vec2{3, 4})
	if sum != (Vec2{4, 6}) {
		t.Errorf("Add = %v, want {4 6}", sum)
	}

	diff := Vec2{5, 5}.Sub(Vec2{2, 3})
	if diff != (Vec2{3, 2}) {
		t.Errorf("Sub = %v, want {3 2}", diff)
	}

	scaled := Vec2{1, -2}.Scale(3)
	if scaled != (Vec2{3, -6}) {
		t.Errorf("Scale = %v, want {3 -6}", scaled)
	}

	if l := (Vec2{3, 4}).Len(); !almostEqual(l, 5) {
		t.Errorf("Len = %v, want 5", l)
	}

	if d := (Vec2{0, 0}).Dist(Vec2{3, 4}); !almostEqual(d, 5) {
		t.Errorf("Dist = %v, want 5", d)
	}
}

func TestVec2Norm(t *testing.T) {
	n := Vec2{3, 4}.Norm()
	if !almostEqual(n.X, 0.6) || !almostEqual(n.Y, 0.8) {
		t.Errorf("Norm = %v, want {0.6 0.8}", n)
	}

	zero := Vec2{}.Norm()
	if zero != (Vec2{}) {
		t.Errorf("Norm of zero vector = %v, want zero", zero)
	}
}

func TestRectFContains(t *testing.T) {
	r := RectF{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{25, 40}, true},
		{"top-left corner inclusive", Vec2{10, 20}, true},
		{"bottom-right corner inclusive", Vec2{40, 60}, true},
		{"left of rect", Vec2{9.9, 40}, false},
		{"below rect", Vec2{25, 60.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestProjectionCell(t *testing.T) {
	p := NewProjection(100, 50, 10, 5)

	tests := []struct {
		name  string
		pt    Vec2
		wantX int
		wantY int
	}{
		{"origin", Vec2{0, 0}, 0, 0},
		{"center", Vec2{50, 25}, 5, 2},
		{"near far corner", Vec2{99, 49}, 9, 4},
		{"on far edge clamps", Vec2{100, 50}, 9, 4},
		{"negative clamps", Vec2{-5, -5}, 0, 0},
		{"beyond field clamps", Vec2{1000, 1000}, 9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := p.Cell(tt.pt)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Cell(%v) = (%d, %d), want (%d, %d)", tt.pt, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProjectionField(t *testing.T) {
	p := NewProjection(100, 50, 10, 5)

	got := p.Field(0, 0)
	if !almostEqual(got.X, 5) || !almostEqual(got.Y, 5) {
		t.Errorf("Field(0, 0) = %v, want {5 5}", got)
	}

	got = p.Field(9, 4)
	if !almostEqual(got.X, 95) || !almostEqual(got.Y, 45) {
		t.Errorf("Field(9, 4) = %v, want {95 45}", got)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(1107, 694, 120, 36)

	// A cell's center must map back to the same cell.
	for _, cell := range [][2]int{{0, 0}, {60, 18}, {119, 35}} {
		pt := p.Field(cell[0], cell[1])
		x, y := p.Cell(pt)
		if x != cell[0] || y != cell[1] {
			t.Errorf("round trip of cell (%d, %d) gave (%d, %d)", cell[0], cell[1], x, y)
		}
	}
}

func TestProjectionCellRect(t *testing.T) {
	p := NewProjection(100, 50, 10, 5)

	r := p.CellRect(RectF{X: 10, Y: 10, W: 20, H: 10})
	want := NewRect(1, 1, 3, 2)
	if r != want {
		t.Errorf("CellRect = %+v, want %+v", r, want)
	}

	// Tiny boxes still cover at least one cell.
	tiny := p.CellRect(RectF{X: 55, Y: 5, W: 0.1, H: 0.1})
	if tiny.W < 1 || tiny.H < 1 {
		t.Errorf("CellRect of tiny box = %+v, want at least 1x1", tiny)
	}
}

func TestProjectionDegenerateGrid(t *testing.T) {
	p := NewProjection(100, 50, 0, -3)
	x, y := p.Cell(Vec2{50, 25})
	if x != 0 || y != 0 {
		t.Errorf("Cell on degenerate grid = (%d, %d), want (0, 0)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		want          int
	}{
		{"in range", 5, 0, 10, 5},
		{"below min", -1, 0, 10, 0},
		{"above max", 11, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, want 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, want 0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %v, want 0.25", got)
	}
}

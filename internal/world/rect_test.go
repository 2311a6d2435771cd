package world

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		rect         Rect
		wantX, wantY int
	}{
		{Rect{X1: 2, Y1: 2, X2: 12, Y2: 9}, 7, 5},
		{Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}, 2, 2},
		{NewRect(1, 1, 5, 5), 3, 3},
		{NewRect(3, 0, 7, 1), 6, 0},
	}

	for _, tt := range tests {
		x, y := tt.rect.Center()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.rect, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestNewRect(t *testing.T) {
	r := NewRect(3, 4, 6, 2)
	want := Rect{X1: 3, Y1: 4, X2: 9, Y2: 6}
	if r != want {
		t.Errorf("NewRect(3,4,6,2) = %+v, want %+v", r, want)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 4, 4}, Rect{3, 3, 7, 7}, true},
		{"disjoint", Rect{0, 0, 4, 4}, Rect{5, 5, 9, 9}, false},
		{"shared vertical edge", Rect{0, 0, 4, 4}, Rect{4, 0, 8, 4}, true},
		{"shared corner", Rect{0, 0, 4, 4}, Rect{4, 4, 8, 8}, true},
		{"one apart", Rect{0, 0, 4, 4}, Rect{5, 0, 9, 4}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 4, 4}, true},
		{"same rows, apart", Rect{0, 0, 3, 9}, Rect{6, 0, 9, 9}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: a.Intersects(b) = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(tt.a); got != tt.want {
			t.Errorf("%s: b.Intersects(a) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectInInterior(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	if r.InInterior(0, 2) || r.InInterior(4, 2) {
		t.Error("boundary columns are not interior")
	}
	if !r.InInterior(1, 1) || !r.InInterior(3, 3) {
		t.Error("(1,1) and (3,3) are interior")
	}
}

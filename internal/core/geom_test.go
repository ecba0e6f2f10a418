package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        NewBox(10, 10, 4, 4),
			b:        NewBox(10, 10, 2, 2),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(8, 8, 10, 10),
			expected: true,
		},
		{
			name:     "apart horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "apart vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 20, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxScale(t *testing.T) {
	b := NewBox(5, 6, 50, 40).Scale(0.7)
	if b.X != 5 || b.Y != 6 {
		t.Errorf("Scale moved the center to (%v, %v)", b.X, b.Y)
	}
	if b.W != 35 || b.H != 28 {
		t.Errorf("Scale() = %vx%v, expected 35x28", b.W, b.H)
	}

	// Shrinking turns a touching pair into a miss
	a := NewBox(0, 0, 10, 10)
	c := NewBox(9, 0, 10, 10)
	if !a.Overlaps(c) {
		t.Fatal("unscaled boxes should overlap")
	}
	if a.Scale(0.7).Overlaps(c.Scale(0.7)) {
		t.Error("scaled boxes should not overlap")
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, 20, 4, 6)
	if b.Left() != 8 || b.Right() != 12 {
		t.Errorf("Left/Right = %v/%v, expected 8/12", b.Left(), b.Right())
	}
	if b.Top() != 17 || b.Bottom() != 23 {
		t.Errorf("Top/Bottom = %v/%v, expected 17/23", b.Top(), b.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
}

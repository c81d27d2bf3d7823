package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(65, 10, 12, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 70, 11, true},
		{"top-left corner", 65, 10, true},
		{"last column", 76, 12, true},
		{"right edge (exclusive)", 77, 11, false},
		{"bottom edge (exclusive)", 70, 13, false},
		{"outside left", 64, 11, false},
		{"outside top", 70, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestZeroRectContainsNothing(t *testing.T) {
	var r Rect
	if r.Contains(0, 0) {
		t.Error("zero-sized rect should not contain its origin")
	}
}

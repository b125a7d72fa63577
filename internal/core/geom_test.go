package core

import "testing"

func TestPointOffset(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		dx, dy   int
		expected Point
	}{
		{"right", Point{X: 3, Y: 4}, 1, 0, Point{X: 4, Y: 4}},
		{"left", Point{X: 3, Y: 4}, -1, 0, Point{X: 2, Y: 4}},
		{"down", Point{X: 3, Y: 4}, 0, 1, Point{X: 3, Y: 5}},
		{"up", Point{X: 3, Y: 4}, 0, -1, Point{X: 3, Y: 3}},
		{"no move", Point{X: 3, Y: 4}, 0, 0, Point{X: 3, Y: 4}},
		{"negative coords", Point{X: 0, Y: 0}, -2, -3, Point{X: -2, Y: -3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Offset(tc.dx, tc.dy)
			if result != tc.expected {
				t.Errorf("Offset(%d, %d) = %v, expected %v", tc.dx, tc.dy, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

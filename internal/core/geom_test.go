package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"last cell", 5, 7, true},
		{"right edge", 6, 3, false},
		{"bottom edge", 2, 8, false},
		{"left of", 1, 4, false},
		{"above", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectGrow(t *testing.T) {
	got := NewRect(2, 3, 4, 5).Grow(1)
	if got != NewRect(1, 2, 6, 7) {
		t.Errorf("Grow(1) = %+v", got)
	}
	if !got.Contains(1, 2) || got.Contains(7, 2) {
		t.Error("grown rect should cover the frame cells only")
	}
}

func TestRectFOverlapsX(t *testing.T) {
	player := NewRectF(50, 150, 20, 20)

	if !player.OverlapsX(NewRectF(60, 0, 30, 1)) {
		t.Error("span starting inside the player should overlap")
	}
	if player.OverlapsX(NewRectF(70, 0, 30, 1)) {
		t.Error("span starting at the player's right edge should not overlap")
	}
	if player.OverlapsX(NewRectF(20, 0, 30, 1)) {
		t.Error("span ending at the player's left edge should not overlap")
	}
}

func TestPlayfieldSize(t *testing.T) {
	tests := []struct {
		name      string
		viewportW int
		expected  Size
	}{
		{"wide viewport caps at max width", 1920, Size{W: 320, H: 480}},
		{"narrow viewport uses ratio", 300, Size{W: 270, H: 405}},
		{"fraction truncates", 301, Size{W: 270, H: 405}},
		{"zero viewport keeps one pixel", 0, Size{W: 1, H: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PlayfieldSize(tc.viewportW, 320, 0.9, 1.5)
			if got != tc.expected {
				t.Errorf("PlayfieldSize(%d) = %+v, expected %+v", tc.viewportW, got, tc.expected)
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
	if r.Empty() {
		t.Error("20x15 rect should not be empty")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
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
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

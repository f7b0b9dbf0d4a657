package core

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("Contains should include the top-left and bottom-right cells")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("Contains should exclude the edges past the rectangle")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clamp above")
	}
	if ClampF(-0.2, 0, 1) != 0 {
		t.Error("ClampF should clamp below")
	}
	if ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF should pass through in-range values")
	}
}

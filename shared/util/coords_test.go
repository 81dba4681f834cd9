package util

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{47, 16, 2},
		{-48, 16, -3},
	}

	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, esperado %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 15},
		{16, 16, 0},
		{-1, 16, 15},
		{-16, 16, 0},
		{-17, 16, 15},
	}

	for _, tt := range tests {
		if got := FloorMod(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorMod(%d, %d) = %d, esperado %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// Para todo wx: cx*S + lx == wx, com 0 <= lx < S.
func TestFloorDivModRoundTrip(t *testing.T) {
	const size = 16
	for wx := -1000; wx <= 1000; wx++ {
		cx := FloorDiv(wx, size)
		lx := FloorMod(wx, size)
		if lx < 0 || lx >= size {
			t.Fatalf("FloorMod(%d, %d) = %d fora de [0, %d)", wx, size, lx, size)
		}
		if cx*size+lx != wx {
			t.Fatalf("cx*S+lx = %d, esperado %d (cx=%d lx=%d)", cx*size+lx, wx, cx, lx)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
		{-3, -2, 2, -2},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, esperado %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

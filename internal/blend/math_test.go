package blend

import (
	"testing"
)

// TestDiv255 tests Alvy Ray Smith's exact formula over every input
// mulDiv255 can produce.
func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255+127; x++ {
		expected := x / 255
		got := int(div255(uint16(x)))

		if got != expected {
			t.Fatalf("div255(%d) = %d, want %d", x, got, expected)
		}
	}
}

// TestMulDiv255 tests rounded multiplication.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{255, 128, 128},
		{128, 128, 64},
		{85, 128, 43},
		{1, 127, 0},
		{1, 128, 1},
	}

	for _, tt := range tests {
		got := mulDiv255(tt.a, tt.b)
		if got != tt.expected {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

// TestMulDiv255Identity tests that full coverage leaves a value unchanged.
func TestMulDiv255Identity(t *testing.T) {
	for a := 0; a <= 255; a++ {
		if got := mulDiv255(byte(a), 255); got != byte(a) {
			t.Errorf("mulDiv255(%d, 255) = %d", a, got)
		}
	}
}

func TestAddClamp(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{100, 100, 200},
		{200, 100, 255},
		{255, 255, 255},
	}
	for _, tt := range tests {
		if got := addClamp(tt.a, tt.b); got != tt.want {
			t.Errorf("addClamp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

package kmap

import (
	"testing"
)

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name    string
		cell1   uint8
		cell2   uint8
		numVars uint8
		want    bool
	}{
		{"differ in bit 0", 0, 1, 2, true},
		{"differ in bit 1", 1, 3, 2, true},
		{"differ in two bits", 0, 3, 2, false},
		{"same cell", 2, 2, 2, false},
		{"wraparound neighbors", 0, 4, 3, true},
		{"diagonal", 1, 2, 3, false},
		{"high bit only", 0, 32, 6, true},
		{"cell1 out of range", 4, 0, 2, false},
		{"cell2 out of range", 0, 8, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adjacent(tt.cell1, tt.cell2, tt.numVars); got != tt.want {
				t.Errorf("Adjacent(%d, %d, %d) = %v, want %v", tt.cell1, tt.cell2, tt.numVars, got, tt.want)
			}
		})
	}
}

func TestAdjacentIsSymmetric(t *testing.T) {
	const numVars = 4
	for a := uint8(0); a < 1<<numVars; a++ {
		for b := uint8(0); b < 1<<numVars; b++ {
			if Adjacent(a, b, numVars) != Adjacent(b, a, numVars) {
				t.Errorf("Adjacent(%d, %d) != Adjacent(%d, %d)", a, b, b, a)
			}
		}
	}
}

func TestGrayRoundTrip(t *testing.T) {
	for numVars := uint8(2); numVars <= MaxVariables; numVars++ {
		for x := uint(0); x < uint(1)<<numVars; x++ {
			cell := uint8(x)
			gray := LinearToGray(cell, numVars)
			if gray >= 1<<numVars {
				t.Fatalf("LinearToGray(%d, %d) = %d, out of range", cell, numVars, gray)
			}
			if got := GrayToLinear(gray, numVars); got != cell {
				t.Errorf("GrayToLinear(LinearToGray(%d, %d)) = %d, want %d", cell, numVars, got, cell)
			}
		}
	}
}

func TestLinearToGraySequence(t *testing.T) {
	// The 2-variable Gray sequence is the canonical 00 01 11 10.
	want := []uint8{0, 1, 3, 2}
	for i, w := range want {
		if got := LinearToGray(uint8(i), 2); got != w {
			t.Errorf("LinearToGray(%d, 2) = %d, want %d", i, got, w)
		}
	}

	// Consecutive Gray codes differ in exactly one bit for every size.
	for numVars := uint8(2); numVars <= MaxVariables; numVars++ {
		for x := uint(1); x < uint(1)<<numVars; x++ {
			prev := LinearToGray(uint8(x-1), numVars)
			cur := LinearToGray(uint8(x), numVars)
			if popcount(uint64(prev^cur)) != 1 {
				t.Errorf("%d-var Gray codes at %d and %d differ in %d bits", numVars, x-1, x, popcount(uint64(prev^cur)))
			}
		}
	}
}

func TestGrayOutOfRange(t *testing.T) {
	if got := LinearToGray(4, 2); got != 0 {
		t.Errorf("LinearToGray(4, 2) = %d, want 0", got)
	}
	if got := GrayToLinear(16, 3); got != 0 {
		t.Errorf("GrayToLinear(16, 3) = %d, want 0", got)
	}
}

func TestPopcount(t *testing.T) {
	tests := []struct {
		value uint64
		want  uint8
	}{
		{0, 0},
		{1, 1},
		{0b1010, 2},
		{^uint64(0), 64},
	}
	for _, tt := range tests {
		if got := popcount(tt.value); got != tt.want {
			t.Errorf("popcount(%#x) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestTrailingZeros(t *testing.T) {
	tests := []struct {
		value uint64
		want  uint8
	}{
		{1, 0},
		{0b1000, 3},
		{uint64(1) << 63, 63},
		{0b1100, 2},
	}
	for _, tt := range tests {
		if got := trailingZeros(tt.value); got != tt.want {
			t.Errorf("trailingZeros(%#x) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestCellMask(t *testing.T) {
	tests := []struct {
		numVars uint8
		want    uint64
	}{
		{2, 0xF},
		{3, 0xFF},
		{4, 0xFFFF},
		{5, 0xFFFFFFFF},
		{6, ^uint64(0)},
	}
	for _, tt := range tests {
		if got := cellMask(tt.numVars); got != tt.want {
			t.Errorf("cellMask(%d) = %#x, want %#x", tt.numVars, got, tt.want)
		}
	}
}

// Package kmap: cell-index bit utilities and Gray-code conversion.
//
// All minimization logic works directly on linear cell indices: two cells
// of the Boolean hypercube are adjacent iff their indices differ in
// exactly one bit, independent of how a Karnaugh map happens to lay the
// cells out visually. The Gray-code conversions in this file exist only
// for index mapping and display (see RenderGrid); they take no part in
// grouping or reduction.
package kmap

import "math/bits"

// Gray-code lookup tables for the common map sizes. Larger sizes fall
// back to the algorithmic conversion.
var (
	gray2Var = [4]uint8{0, 1, 3, 2}
	gray3Var = [8]uint8{0, 1, 3, 2, 6, 7, 5, 4}
	gray4Var = [16]uint8{0, 1, 3, 2, 6, 7, 5, 4, 12, 13, 15, 14, 10, 11, 9, 8}
)

// Reverse lookup tables for Gray to linear conversion.
var (
	linear2Var = [4]uint8{0, 1, 3, 2}
	linear3Var = [8]uint8{0, 1, 3, 2, 7, 6, 4, 5}
	linear4Var = [16]uint8{0, 1, 3, 2, 7, 6, 4, 5, 15, 14, 12, 13, 8, 9, 11, 10}
)

// popcount returns the number of set bits in v.
func popcount(v uint64) uint8 {
	return uint8(bits.OnesCount64(v))
}

// trailingZeros returns the index of the lowest set bit in v.
// v must be non-zero.
func trailingZeros(v uint64) uint8 {
	return uint8(bits.TrailingZeros64(v))
}

// cellMask returns the bitmask covering every cell of a numVars-variable
// map. Written without a plain shift so the 6-variable case (64 cells,
// the full word) stays defined.
func cellMask(numVars uint8) uint64 {
	cells := uint(1) << numVars
	if cells >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << cells) - 1
}

// LinearToGray converts a linear cell index to its Gray-code position for
// a numVars-variable map. Out-of-range inputs return 0.
func LinearToGray(linear, numVars uint8) uint8 {
	if uint(linear) >= uint(1)<<numVars {
		return 0
	}

	switch numVars {
	case 2:
		return gray2Var[linear]
	case 3:
		return gray3Var[linear]
	case 4:
		return gray4Var[linear]
	case 5, 6:
		return linear ^ (linear >> 1)
	default:
		return 0
	}
}

// GrayToLinear converts a Gray-code position back to its linear cell
// index for a numVars-variable map. Out-of-range inputs return 0.
// GrayToLinear(LinearToGray(x, n), n) == x for every x < 2^n.
func GrayToLinear(gray, numVars uint8) uint8 {
	if uint(gray) >= uint(1)<<numVars {
		return 0
	}

	switch numVars {
	case 2:
		return linear2Var[gray]
	case 3:
		return linear3Var[gray]
	case 4:
		return linear4Var[gray]
	case 5, 6:
		result := gray
		for i := uint8(1); i < numVars; i++ {
			result ^= gray >> i
		}
		return result
	default:
		return 0
	}
}

// Adjacent reports whether two cell indices are adjacent on the
// numVars-variable hypercube, i.e. differ in exactly one bit. Indices
// outside the map are never adjacent.
func Adjacent(cell1, cell2, numVars uint8) bool {
	if uint(cell1) >= uint(1)<<numVars || uint(cell2) >= uint(1)<<numVars {
		return false
	}
	return popcount(uint64(cell1^cell2)) == 1
}

package kmap

import (
	"errors"
	"fmt"
)

// Capacity limits for a solve call. Every working structure is bounded
// by these constants; nothing in the engine grows past them.
const (
	// MaxVariables is the largest supported variable count.
	MaxVariables = 6

	// MaxCells is the cell count of the largest supported map.
	MaxCells = 1 << MaxVariables

	// MaxGroups bounds the number of implicants in a solution.
	MaxGroups = 32

	// MaxExpressionLen is the default capacity for a rendered
	// sum-of-products expression.
	MaxExpressionLen = 1024
)

// Sentinel errors distinguishing the failure classes of a solve call.
// Callers match them with errors.Is; every error returned by this
// package wraps exactly one of them.
var (
	// ErrParse reports malformed input: an unrecognized grammar, a
	// non-numeric or out-of-range minterm, or a pattern whose length is
	// not a supported power of two.
	ErrParse = errors.New("kmap: parse error")

	// ErrValidation reports a truth-table invariant violation, or a
	// post-grouping coverage mismatch (an engine defect, fatal to the
	// call).
	ErrValidation = errors.New("kmap: validation error")

	// ErrBufferTooSmall reports that the rendered expression would not
	// fit the requested capacity. The caller may retry with a larger
	// capacity; nothing partial is returned.
	ErrBufferTooSmall = errors.New("kmap: output buffer too small")
)

// TruthTable is the bit-vector representation of a partially-specified
// Boolean function over NumVars variables. Bit i of Minterms marks cell
// i as a required one; bit i of DontCares marks it as unspecified. A
// table is built once per solve call from parsed input and never
// modified afterwards.
//
// Invariants (checked by Validate):
//   - NumVars in [2, MaxVariables]
//   - Minterms and DontCares are disjoint
//   - both bit vectors fit within 2^NumVars cells
//   - MintermCount equals the population count of Minterms
type TruthTable struct {
	Minterms     uint64 // bit vector of required ones
	DontCares    uint64 // bit vector of unspecified cells
	NumVars      uint8  // number of variables (2-6)
	MintermCount uint8  // count of required ones
}

// Validate checks the structural invariants of the truth table. Each
// violation is reported as a distinct error wrapping ErrValidation;
// nothing is ever silently corrected.
func (tt *TruthTable) Validate() error {
	if tt.NumVars < 2 || tt.NumVars > MaxVariables {
		return fmt.Errorf("%w: Validate: num_vars %d outside [2,%d]", ErrValidation, tt.NumVars, MaxVariables)
	}
	if tt.Minterms&tt.DontCares != 0 {
		return fmt.Errorf("%w: Validate: minterms and don't cares overlap", ErrValidation)
	}
	if (tt.Minterms|tt.DontCares)&^cellMask(tt.NumVars) != 0 {
		return fmt.Errorf("%w: Validate: cell index outside %d-variable map", ErrValidation, tt.NumVars)
	}
	if tt.MintermCount != popcount(tt.Minterms) {
		return fmt.Errorf("%w: Validate: minterm count %d does not match bit vector", ErrValidation, tt.MintermCount)
	}
	return nil
}

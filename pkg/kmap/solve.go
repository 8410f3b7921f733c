// Package kmap minimizes partially-specified Boolean functions into
// compact sum-of-products expressions, the classic Karnaugh-map
// reduction problem.
//
// A function is given as a truth table over 2 to 6 variables in one of
// two textual grammars: a pattern string such as "10X1" (one symbol per
// cell, X/x/- marking don't-care positions) or a minterm list such as
// "0,1,3,5". Solve parses, validates, groups adjacent cells on the
// Boolean hypercube into implicants (recruiting don't cares to enlarge
// groups), drops subsumed implicants, verifies that exactly the
// required minterms are covered, and renders the result:
//
//	expr, err := kmap.Solve("1X1X")  // "A"
//
// The grouping engine is a deterministic greedy heuristic with fixed
// pass ordering and first-fit tie-breaks. It always produces a valid
// cover, but not necessarily a literal-count-minimal one.
//
// Every solve call is synchronous, allocation-light and side-effect
// free on shared state; calls may run concurrently without
// synchronization (see SolveBatch).
package kmap

import "fmt"

// Solve minimizes the truth table described by input and returns its
// sum-of-products expression, using the default expression capacity.
// Errors wrap ErrParse, ErrValidation or ErrBufferTooSmall; see the
// sentinel docs for the taxonomy.
func Solve(input string) (string, error) {
	return SolveWithCapacity(input, MaxExpressionLen)
}

// SolveWithCapacity is Solve with an explicit bound on the rendered
// expression length. A too-small capacity fails with ErrBufferTooSmall
// (never a truncated expression), so a caller can retry larger.
func SolveWithCapacity(input string, capacity int) (string, error) {
	tt, err := Parse(input)
	if err != nil {
		return "", err
	}
	if err := tt.Validate(); err != nil {
		return "", err
	}

	// Trivial cases need no grouping: no required ones is the constant
	// 0 (regardless of don't cares), a map of all ones is the constant
	// 1. Both still honor the capacity contract.
	if tt.MintermCount == 0 {
		return renderConstant("0", capacity)
	}
	if tt.Minterms == cellMask(tt.NumVars) {
		return renderConstant("1", capacity)
	}

	sol, err := FindPrimeImplicants(tt)
	if err != nil {
		return "", err
	}

	// Hard post-condition on the grouping and elimination pipeline: the
	// solution must cover exactly the required minterms. A mismatch is
	// an engine defect and fatal to the call; a partial cover is never
	// rendered.
	if covered := sol.coveredUnion(); covered != tt.Minterms {
		return "", fmt.Errorf("%w: Solve: cover %#x does not match minterms %#x", ErrValidation, covered, tt.Minterms)
	}

	return GenerateSOP(sol, tt.NumVars, capacity)
}

// FindPrimeImplicants runs the grouping engine and the redundancy pass
// over a validated truth table and returns the resulting solution with
// its derived statistics. The input table is not modified.
func FindPrimeImplicants(tt *TruthTable) (*Solution, error) {
	if err := tt.Validate(); err != nil {
		return nil, err
	}

	sol := &Solution{Implicants: make([]Implicant, 0, MaxGroups)}
	if tt.MintermCount == 0 {
		return sol, nil
	}

	findGroups(tt.Minterms, tt.DontCares, tt.NumVars, sol)
	sol.removeRedundant()
	sol.recount()
	return sol, nil
}

// renderConstant applies the renderer's capacity contract to the
// trivial-case constants.
func renderConstant(c string, capacity int) (string, error) {
	if capacity < len(c) {
		return "", fmt.Errorf("%w: Solve: capacity %d cannot hold %q", ErrBufferTooSmall, capacity, c)
	}
	return c, nil
}

package kmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRemoveRedundant(t *testing.T) {
	tests := []struct {
		name string
		in   []Implicant
		want []Implicant
	}{
		{
			name: "strict subset of larger implicant removed",
			in: []Implicant{
				{CoveredMinterms: 0b0010, LiteralMask: 0b11, LiteralValues: 1, Size: 1},
				{CoveredMinterms: 0b1010, LiteralMask: 0b01, LiteralValues: 1, Size: 2},
			},
			want: []Implicant{
				{CoveredMinterms: 0b1010, LiteralMask: 0b01, LiteralValues: 1, Size: 2},
			},
		},
		{
			name: "equal covers both survive",
			in: []Implicant{
				{CoveredMinterms: 0b0011, LiteralMask: 0b10, Size: 2},
				{CoveredMinterms: 0b0011, LiteralMask: 0b01, Size: 2},
			},
			want: []Implicant{
				{CoveredMinterms: 0b0011, LiteralMask: 0b10, Size: 2},
				{CoveredMinterms: 0b0011, LiteralMask: 0b01, Size: 2},
			},
		},
		{
			name: "disjoint covers untouched, order preserved",
			in: []Implicant{
				{CoveredMinterms: 0b0001, LiteralMask: 0b11, Size: 1},
				{CoveredMinterms: 0b0110, LiteralMask: 0b01, Size: 2},
				{CoveredMinterms: 0b1000, LiteralMask: 0b11, LiteralValues: 3, Size: 1},
			},
			want: []Implicant{
				{CoveredMinterms: 0b0001, LiteralMask: 0b11, Size: 1},
				{CoveredMinterms: 0b0110, LiteralMask: 0b01, Size: 2},
				{CoveredMinterms: 0b1000, LiteralMask: 0b11, LiteralValues: 3, Size: 1},
			},
		},
		{
			name: "subsumption chain collapses in one pass",
			// Subset relations are transitive, so both smaller
			// implicants fall to the largest within a single round.
			in: []Implicant{
				{CoveredMinterms: 0b0001, Size: 1},
				{CoveredMinterms: 0b0011, Size: 2},
				{CoveredMinterms: 0b0111, Size: 3},
			},
			want: []Implicant{
				{CoveredMinterms: 0b0111, Size: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := &Solution{Implicants: append([]Implicant(nil), tt.in...)}
			sol.removeRedundant()
			if diff := cmp.Diff(tt.want, sol.Implicants); diff != "" {
				t.Errorf("survivors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveRedundantPreservesCoverage(t *testing.T) {
	sol := &Solution{Implicants: []Implicant{
		{CoveredMinterms: 0b0010, Size: 1},
		{CoveredMinterms: 0b1010, Size: 2},
		{CoveredMinterms: 0b0100, Size: 1},
	}}
	before := sol.coveredUnion()
	sol.removeRedundant()
	assert.Equal(t, before, sol.coveredUnion())
}

func TestRecount(t *testing.T) {
	sol := &Solution{Implicants: []Implicant{
		{LiteralMask: 0b011, Size: 2},
		{LiteralMask: 0b111, Size: 1},
		{LiteralMask: 0b000, Size: 4},
	}}
	sol.recount()
	assert.Equal(t, 3, sol.TermCount)
	assert.Equal(t, 5, sol.LiteralCount)
}

package kmap

// Don't-care-aware candidate-implicant discovery.
//
// The engine runs three greedy passes over ascending cell indices:
// pairs, then quads, then singles. Don't-care cells may join a group to
// enlarge it, but only required minterms count as covered; a group must
// cover at least one. Earlier cells and earlier-found partners always
// win (first fit, no backtracking), so the result is a reproducible
// valid cover, not a guaranteed minimum one.

// findGroups emits implicants for every required minterm, capped at
// MaxGroups entries.
func findGroups(minterms, dontCares uint64, numVars uint8, sol *Solution) {
	remaining := minterms             // required cells not yet covered
	available := minterms | dontCares // cells eligible to join a group
	totalCells := uint(1) << numVars

	// Pass 1: pairs. Each group starts at a still-uncovered required
	// minterm and takes the first higher-indexed available cell at
	// Hamming distance 1. Both raw cells leave the available pool so no
	// cell is reused.
	for cell1 := uint8(0); uint(cell1) < totalCells && len(sol.Implicants) < MaxGroups; cell1++ {
		if available&(uint64(1)<<cell1) == 0 {
			continue
		}
		if remaining&(uint64(1)<<cell1) == 0 {
			continue
		}

		for cell2 := cell1 + 1; uint(cell2) < totalCells; cell2++ {
			if available&(uint64(1)<<cell2) == 0 {
				continue
			}
			if !Adjacent(cell1, cell2, numVars) {
				continue
			}

			diff := cell1 ^ cell2
			groupMask := uint64(1)<<cell1 | uint64(1)<<cell2

			imp := Implicant{
				CoveredMinterms: groupMask & minterms,
				LiteralMask:     uint8(uint(1)<<numVars-1) &^ diff,
			}
			imp.LiteralValues = cell1 & imp.LiteralMask
			imp.Size = popcount(imp.CoveredMinterms)

			if imp.CoveredMinterms != 0 {
				sol.Implicants = append(sol.Implicants, imp)
				remaining &^= imp.CoveredMinterms
				available &^= groupMask
				break
			}
		}
	}

	// Pass 2: quads for whatever pass 1 left uncovered. Four ascending
	// available cells whose XOR flips exactly two variable positions and
	// which pass the rectangle-consistency check below form one group.
	for cell1 := uint8(0); uint(cell1) < totalCells && len(sol.Implicants) < MaxGroups && remaining != 0; cell1++ {
		if remaining&(uint64(1)<<cell1) == 0 {
			continue
		}

		quadForCell(cell1, minterms, &remaining, &available, numVars, sol)
	}

	// Pass 3: singles. Anything still uncovered becomes its own
	// full-mask implicant, guaranteeing total coverage.
	for cell := uint8(0); uint(cell) < totalCells && len(sol.Implicants) < MaxGroups; cell++ {
		if remaining&(uint64(1)<<cell) == 0 {
			continue
		}
		sol.Implicants = append(sol.Implicants, Implicant{
			CoveredMinterms: uint64(1) << cell,
			LiteralMask:     uint8(uint(1)<<numVars - 1),
			LiteralValues:   cell,
			Size:            1,
		})
	}
}

// quadForCell searches ascending 4-tuples starting at cell1 and emits
// the first valid quad covering at least one required minterm. Returns
// true if a quad was emitted.
func quadForCell(cell1 uint8, minterms uint64, remaining, available *uint64, numVars uint8, sol *Solution) bool {
	totalCells := uint(1) << numVars

	for cell2 := cell1 + 1; uint(cell2) < totalCells; cell2++ {
		if !Adjacent(cell1, cell2, numVars) {
			continue
		}
		if *available&(uint64(1)<<cell2) == 0 {
			continue
		}

		for cell3 := cell2 + 1; uint(cell3) < totalCells; cell3++ {
			if !Adjacent(cell1, cell3, numVars) && !Adjacent(cell2, cell3, numVars) {
				continue
			}
			if *available&(uint64(1)<<cell3) == 0 {
				continue
			}

			for cell4 := cell3 + 1; uint(cell4) < totalCells; cell4++ {
				if *available&(uint64(1)<<cell4) == 0 {
					continue
				}

				groupMask := uint64(1)<<cell1 | uint64(1)<<cell2 | uint64(1)<<cell3 | uint64(1)<<cell4
				diffBits := cell1 ^ cell2 ^ cell3 ^ cell4

				// A valid quad eliminates exactly two variables.
				if popcount(uint64(diffBits)) != 2 || !validQuad(cell1, cell2, cell3, cell4) {
					continue
				}

				covered := groupMask & minterms
				if covered == 0 {
					continue
				}

				imp := Implicant{
					CoveredMinterms: covered,
					LiteralMask:     uint8(uint(1)<<numVars-1) &^ diffBits,
					Size:            popcount(covered),
				}
				imp.LiteralValues = cell1 & imp.LiteralMask

				sol.Implicants = append(sol.Implicants, imp)
				*remaining &^= covered
				*available &^= groupMask
				return true
			}
		}
	}
	return false
}

// validQuad is the rectangle-consistency check on a candidate quad: the
// differences between the first cell and each other cell must be
// non-zero and at least one pairing of them must share no bits. This is
// a heuristic screen, not a proof that the four cells form a single
// axis-aligned rectangle; the exact test would require the cells to be
// {base, base^i, base^j, base^i^j} for two distinct bit positions.
func validQuad(c1, c2, c3, c4 uint8) bool {
	diff1 := c1 ^ c2
	diff2 := c1 ^ c3
	diff3 := c1 ^ c4

	return diff1 != 0 && diff2 != 0 && diff3 != 0 &&
		(diff1&diff2 == 0 || diff1&diff3 == 0 || diff2&diff3 == 0)
}

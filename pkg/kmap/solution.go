package kmap

// Implicant is one product term of a solution: a group of cells whose
// indices agree on every variable in LiteralMask. A variable absent from
// the mask has been eliminated from the term. LiteralValues carries the
// required polarity (bit set = uncomplemented) for each masked variable.
//
// CoveredMinterms records only the required minterms the group accounts
// for; don't-care cells recruited to enlarge the group are not counted,
// so CoveredMinterms is always a subset of the originating table's
// Minterms.
type Implicant struct {
	CoveredMinterms uint64 // required minterms this term accounts for
	LiteralMask     uint8  // which variables appear in the term
	LiteralValues   uint8  // polarity of each masked variable
	Size            uint8  // popcount of CoveredMinterms
}

// Solution is the ordered implicant list produced by one solve call,
// together with the derived expression statistics. It is owned by the
// call stack of a single invocation; the grouping passes build it, the
// redundancy pass mutates it in place, and the renderer reads it.
type Solution struct {
	Implicants   []Implicant // at most MaxGroups entries
	TermCount    int         // number of product terms
	LiteralCount int         // total literals across all terms
}

// removeRedundant drops every implicant whose covered minterms are a
// strict subset of a strictly larger implicant's. One O(n²) pass:
// doomed implicants are marked with Size 0, then the list is compacted
// preserving the survivors' relative order. A subsumption chain longer
// than one link can survive this single round; that is the documented
// behavior, not a fixpoint iteration.
func (s *Solution) removeRedundant() {
	for i := range s.Implicants {
		if s.Implicants[i].Size == 0 {
			continue
		}
		for j := range s.Implicants {
			if i == j || s.Implicants[j].Size == 0 {
				continue
			}
			iCovered := s.Implicants[i].CoveredMinterms
			jCovered := s.Implicants[j].CoveredMinterms
			if iCovered&jCovered == iCovered && s.Implicants[j].Size > s.Implicants[i].Size {
				s.Implicants[i].Size = 0
				break
			}
		}
	}

	write := 0
	for read := range s.Implicants {
		if s.Implicants[read].Size > 0 {
			if write != read {
				s.Implicants[write] = s.Implicants[read]
			}
			write++
		}
	}
	s.Implicants = s.Implicants[:write]
}

// coveredUnion returns the union of covered minterms across all
// implicants.
func (s *Solution) coveredUnion() uint64 {
	var covered uint64
	for i := range s.Implicants {
		covered |= s.Implicants[i].CoveredMinterms
	}
	return covered
}

// recount refreshes the derived term and literal statistics.
func (s *Solution) recount() {
	s.TermCount = len(s.Implicants)
	s.LiteralCount = 0
	for i := range s.Implicants {
		s.LiteralCount += int(popcount(uint64(s.Implicants[i].LiteralMask)))
	}
}

package kmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse recognizes one of two truth-table grammars and builds a
// TruthTable from it. Leading whitespace is ignored; empty input fails.
//
// A comma selects the minterm-list grammar ("0,1,3,5"): comma-separated
// non-negative decimal cell indices, each below MaxCells. The variable
// count is the smallest n >= 2 with 2^n above the highest index.
//
// Otherwise the input must be a pattern string over 0, 1, X, x and -
// ("10X1"): one symbol per cell, most-significant cell first, with a
// length of exactly 2^n for some n in [2, MaxVariables]. '1' marks a
// minterm, '0' nothing, the rest a don't care.
//
// Any other input is a parse error.
func Parse(input string) (*TruthTable, error) {
	input = strings.TrimLeft(input, " \t\r\n")
	if input == "" {
		return nil, fmt.Errorf("%w: Parse: empty input", ErrParse)
	}

	if strings.Contains(input, ",") {
		return parseMintermList(input)
	}
	if isPattern(input) {
		return parsePattern(input)
	}
	return nil, fmt.Errorf("%w: Parse: unrecognized input format %q", ErrParse, input)
}

// isPattern reports whether s is restricted to the pattern alphabet.
func isPattern(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1', 'X', 'x', '-':
		default:
			return false
		}
	}
	return true
}

// parsePattern parses the binary/ternary string grammar. The symbol at
// position i (reading left to right) describes cell len-1-i, so the
// leftmost symbol is the highest cell.
func parsePattern(input string) (*TruthTable, error) {
	length := len(input)

	numVars := uint8(0)
	for uint(1)<<numVars < uint(length) {
		numVars++
	}
	if uint(1)<<numVars != uint(length) || numVars < 2 || numVars > MaxVariables {
		return nil, fmt.Errorf("%w: Parse: pattern length %d is not 2^n for n in [2,%d]", ErrParse, length, MaxVariables)
	}

	tt := &TruthTable{NumVars: numVars}
	for i := 0; i < length; i++ {
		bit := uint64(1) << uint(length-1-i)
		switch input[i] {
		case '1':
			tt.Minterms |= bit
			tt.MintermCount++
		case '0':
		case 'X', 'x', '-':
			tt.DontCares |= bit
		default:
			return nil, fmt.Errorf("%w: Parse: invalid pattern symbol %q", ErrParse, input[i])
		}
	}
	return tt, nil
}

// parseMintermList parses the comma-separated index grammar. The split
// is strict: an empty token (as in "12,,3" or a trailing comma) is a
// parse error. Each token may carry leading whitespace but must
// otherwise be a plain decimal integer. A duplicated index still
// increments the minterm count, so duplicates surface later as a
// validation failure rather than being silently collapsed.
func parseMintermList(input string) (*TruthTable, error) {
	tt := &TruthTable{}

	var maxMinterm uint8
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimLeft(token, " \t\r\n")
		if token == "" {
			return nil, fmt.Errorf("%w: Parse: empty minterm token", ErrParse)
		}

		value, err := strconv.ParseUint(token, 10, 8)
		if err != nil || value >= MaxCells {
			return nil, fmt.Errorf("%w: Parse: invalid minterm %q (want 0-%d)", ErrParse, token, MaxCells-1)
		}

		minterm := uint8(value)
		if minterm > maxMinterm {
			maxMinterm = minterm
		}
		tt.Minterms |= uint64(1) << minterm
		tt.MintermCount++
	}

	tt.NumVars = 2
	for uint(1)<<tt.NumVars <= uint(maxMinterm) {
		tt.NumVars++
	}
	if tt.NumVars > MaxVariables {
		return nil, fmt.Errorf("%w: Parse: minterm %d needs more than %d variables", ErrParse, maxMinterm, MaxVariables)
	}
	return tt, nil
}

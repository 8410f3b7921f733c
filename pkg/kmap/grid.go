package kmap

import (
	"fmt"
	"strings"
)

// RenderGrid draws a truth table as a Gray-code-ordered Karnaugh map,
// one symbol per cell: '1' for a minterm, 'X' for a don't care, '0'
// otherwise. Column (and, for four variables, row) headers follow the
// standard Gray sequence 00 01 11 10, so horizontally and vertically
// neighboring cells differ in exactly one variable.
//
// Display only: the minimization engine never consults this layout.
// Maps beyond four variables have no flat two-dimensional rendering and
// fail with ErrValidation.
func RenderGrid(tt *TruthTable) (string, error) {
	if err := tt.Validate(); err != nil {
		return "", err
	}
	if tt.NumVars > 4 {
		return "", fmt.Errorf("%w: RenderGrid: no grid layout for %d variables (>4)", ErrValidation, tt.NumVars)
	}

	symbol := func(cell uint8) string {
		bit := uint64(1) << cell
		switch {
		case tt.Minterms&bit != 0:
			return "1"
		case tt.DontCares&bit != 0:
			return "X"
		default:
			return "0"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "K-Map for %d variables:\n", tt.NumVars)

	switch tt.NumVars {
	case 2:
		b.WriteString("   00 01 11 10\n")
		row := make([]string, 4)
		for col := uint8(0); col < 4; col++ {
			row[col] = symbol(LinearToGray(col, 2))
		}
		b.WriteString("0 │ " + strings.Join(row, "  "))

	case 3:
		b.WriteString("    00 01 11 10\n")
		for r := uint8(0); r < 2; r++ {
			row := make([]string, 4)
			for col := uint8(0); col < 4; col++ {
				row[col] = symbol(r<<2 | LinearToGray(col, 2))
			}
			fmt.Fprintf(&b, " %d │ %s", r, strings.Join(row, "  "))
			if r == 0 {
				b.WriteByte('\n')
			}
		}

	case 4:
		b.WriteString("    00 01 11 10\n")
		for r := uint8(0); r < 4; r++ {
			grayRow := LinearToGray(r, 2)
			row := make([]string, 4)
			for col := uint8(0); col < 4; col++ {
				row[col] = symbol(grayRow<<2 | LinearToGray(col, 2))
			}
			fmt.Fprintf(&b, "%02b │ %s", grayRow, strings.Join(row, "  "))
			if r < 3 {
				b.WriteByte('\n')
			}
		}
	}

	return b.String(), nil
}

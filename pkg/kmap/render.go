package kmap

import (
	"fmt"
	"strings"
)

// variableNames is the variable alphabet, variable 0 (the
// least-significant index bit) first. The renderer deliberately carries
// two names of headroom beyond MaxVariables.
const variableNames = "ABCDEFGH"

// renderMaxVariables caps the renderer at the alphabet length.
const renderMaxVariables = uint8(len(variableNames))

// GenerateSOP renders a solution as a sum-of-products expression:
// product terms joined by " + ", literals within a term joined by "&",
// complemented literals prefixed with "~". An implicant with an empty
// literal mask renders as "1"; an empty solution renders as "0".
//
// capacity bounds the length of the returned string in bytes. If the
// next token would not fit, GenerateSOP fails with ErrBufferTooSmall
// rather than truncating; no partial expression is ever returned.
func GenerateSOP(sol *Solution, numVars uint8, capacity int) (string, error) {
	if capacity <= 0 {
		return "", fmt.Errorf("%w: GenerateSOP: capacity %d", ErrBufferTooSmall, capacity)
	}
	if numVars > renderMaxVariables {
		return "", fmt.Errorf("%w: GenerateSOP: %d variables exceeds alphabet %q", ErrValidation, numVars, variableNames)
	}

	if len(sol.Implicants) == 0 {
		return "0", nil
	}

	var b strings.Builder
	emit := func(token string) error {
		if b.Len()+len(token) > capacity {
			return fmt.Errorf("%w: GenerateSOP: expression exceeds capacity %d", ErrBufferTooSmall, capacity)
		}
		b.WriteString(token)
		return nil
	}

	for i := range sol.Implicants {
		imp := &sol.Implicants[i]

		if i > 0 {
			if err := emit(" + "); err != nil {
				return "", err
			}
		}

		firstLiteral := true
		for v := uint8(0); v < numVars; v++ {
			varBit := uint8(1) << v
			if imp.LiteralMask&varBit == 0 {
				continue
			}

			if !firstLiteral {
				if err := emit("&"); err != nil {
					return "", err
				}
			}
			if imp.LiteralValues&varBit == 0 {
				if err := emit("~"); err != nil {
					return "", err
				}
			}
			if err := emit(variableNames[v : v+1]); err != nil {
				return "", err
			}
			firstLiteral = false
		}

		// Every variable eliminated: the term is the constant 1.
		if firstLiteral {
			if err := emit("1"); err != nil {
				return "", err
			}
		}
	}

	return b.String(), nil
}

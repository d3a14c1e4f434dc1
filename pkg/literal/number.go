// Package literal evaluates the raw text of scanned literals: numeric token
// text to values, and regular expression bodies to compiled patterns. It is
// the consumer side of the token contract, kept out of the scanner so that
// lexing never needs arbitrary-precision arithmetic or a regex engine.
package literal

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ToNumber converts the raw text of a NUMBER token to its numeric value.
// It performs base detection (0b/0o/0x prefixes and the legacy leading-zero
// octal form), strips numeric separators, and applies the exponent to the
// whole mantissa. Malformed text and BigInt-suffixed text yield NaN; BigInt
// literals go through ToBigInt instead.
func ToNumber(raw string) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	if s == "" || strings.HasSuffix(s, "n") {
		return math.NaN()
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		}
		if isLegacyOctal(s[1:]) {
			return parseRadix(s[1:], 8)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ToBigInt converts the raw text of a BigInt literal (with or without the
// trailing 'n') to an arbitrary-precision integer.
func ToBigInt(raw string) (*big.Int, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	s = strings.TrimSuffix(s, "n")
	if s == "" {
		return nil, false
	}

	base := 10
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			s, base = s[2:], 2
		case 'o', 'O':
			s, base = s[2:], 8
		case 'x', 'X':
			s, base = s[2:], 16
		}
	}
	return new(big.Int).SetString(s, base)
}

func parseRadix(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

func isLegacyOctal(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '7' {
			return false
		}
	}
	return len(digits) > 0
}

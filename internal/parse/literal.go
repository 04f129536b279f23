package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// conventionalConstants are literals too common to count as magic.
var conventionalConstants = map[string]struct{}{
	"100":  {},
	"1000": {},
	"0x00": {},
	"0xff": {},
}

// NumericLiterals returns the candidate magic-number literals in code, in
// order: hex literals, decimals with three or more integer digits (with an
// optional fraction) and decimals with three or more fractional digits.
// Decimal digits may come from any script. A literal must not touch an ASCII
// word character on either side, which also rules out identifiers like v100x
// and exponent forms like 1234e5.
//
// The rules mirror the look-around regular expression (\d being any
// decimal digit)
//
//	(?<![a-zA-Z0-9_])(?:0x[0-9a-fA-F]+|\d{3,}(?:\.\d+)?|\d+\.\d{3,})(?![a-zA-Z0-9_e])
//
// which RE2 cannot express, including the backtracking cases: 1234.5e6
// yields 1234 because the fraction is dropped when its end is blocked.
func NumericLiterals(code string) []string {
	var out []string
	for i := 0; i < len(code); {
		if i > 0 && isWordByte(code[i-1]) {
			i++
			continue
		}
		if n := literalAt(code, i); n > 0 {
			out = append(out, code[i:i+n])
			i += n
			continue
		}
		i++
	}
	return out
}

// MagicNumbers returns NumericLiterals minus the conventional constants.
func MagicNumbers(code string) []string {
	var magic []string
	for _, lit := range NumericLiterals(code) {
		if _, ok := conventionalConstants[strings.ToLower(lit)]; ok {
			continue
		}
		magic = append(magic, lit)
	}
	return magic
}

// literalAt returns the length of the literal starting at i, or 0. Digit
// runs give back digits from the right until the literal is no longer
// blocked, as a backtracking matcher would; that only helps when the run
// mixes in non-ASCII digits, since ASCII digits block.
func literalAt(s string, i int) int {
	if s[i] == '0' && i+1 < len(s) && s[i+1] == 'x' {
		j := scan(s, i+2, isHexByte)
		if j > i+2 && !blocked(s, j) {
			return j - i
		}
	}

	ints := digitEnds(s, i)
	if len(ints) == 0 {
		return 0
	}
	d := ints[len(ints)-1]
	var fracs []int
	if d < len(s) && s[d] == '.' {
		fracs = digitEnds(s, d+1)
	}

	for k := len(ints); k >= 3; k-- {
		if k == len(ints) {
			for f := len(fracs); f >= 1; f-- {
				if !blocked(s, fracs[f-1]) {
					return fracs[f-1] - i
				}
			}
		}
		if !blocked(s, ints[k-1]) {
			return ints[k-1] - i
		}
	}

	for f := len(fracs); f >= 3; f-- {
		if !blocked(s, fracs[f-1]) {
			return fracs[f-1] - i
		}
	}
	return 0
}

// digitEnds returns the byte offset after each decimal digit in the run
// starting at i. Digits from any script count.
func digitEnds(s string, i int) []int {
	var ends []int
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsDigit(r) {
			break
		}
		i += size
		ends = append(ends, i)
	}
	return ends
}

func scan(s string, i int, ok func(byte) bool) int {
	for i < len(s) && ok(s[i]) {
		i++
	}
	return i
}

// blocked reports whether a literal ending before j runs into an ASCII word
// character. Exponent markers are letters and so are covered.
func blocked(s string, j int) bool {
	return j < len(s) && isWordByte(s[j])
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexByte(b byte) bool {
	return isDigitByte(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isWordByte(b byte) bool {
	return isDigitByte(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

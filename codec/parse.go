package codec

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ParseInt parses an integer literal: an optional leading minus, then a
// 0x/0b/0o prefixed or bare decimal number. Underscore separators and
// anything else are rejected.
func ParseInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg = true
		s = rest
	}

	base := 10
	for _, p := range [...]struct {
		prefix string
		base   int
	}{{"0x", 16}, {"0X", 16}, {"0b", 2}, {"0B", 2}, {"0o", 8}, {"0O", 8}} {
		if rest, ok := strings.CutPrefix(s, p.prefix); ok {
			s = rest
			base = p.base
			break
		}
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, false
	}

	// An explicit base makes SetString reject underscores and signs inside
	// the digits.
	v, ok := new(big.Int).SetString(s, base)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	if neg {
		v.Neg(v)
	}
	return v, true
}

// ParseFloat parses a real-number literal for float and fixed fields.
// Integer forms (including 0x/0b/0o) convert by value; otherwise the
// literal must be a plain decimal with optional fraction and exponent.
// NaN and infinity spellings are rejected; a finite literal whose value
// overflows float64 still yields the IEEE overflow result.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, ok := ParseInt(s); ok {
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, true
	}
	if !decimalFloatShape(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// A range error keeps the saturated IEEE value.
	return f, true
}

// IsIntLiteral reports whether s would be accepted as an integer literal.
func IsIntLiteral(s string) bool {
	_, ok := ParseInt(s)
	return ok
}

// IsFloatLiteral reports whether s would be accepted as a real-number
// literal.
func IsFloatLiteral(s string) bool {
	_, ok := ParseFloat(s)
	return ok
}

// decimalFloatShape accepts [-]digits[.digits][e[+-]digits] with at least
// one mantissa digit, which keeps ParseFloat's wider grammar (inf, nan,
// hex floats, underscores) out.
func decimalFloatShape(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exponent := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exponent++
		}
		if exponent == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

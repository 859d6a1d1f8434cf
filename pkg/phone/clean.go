package phone

import "strings"

// ContainsInvalidCharacter reports whether raw contains anything outside the
// accepted dialling alphabet: decimal digits, spaces, hyphens, balanced
// parentheses and at most one '+' in the leading position. Unbalanced or
// inverted parentheses count as invalid, as does a '+' anywhere past the
// first byte.
func ContainsInvalidCharacter(raw string) bool {
	depth := 0
	for i := 0; i < len(raw); i++ {
		switch ch := raw[i]; {
		case ch >= '0' && ch <= '9':
		case ch == ' ' || ch == '-':
		case ch == '(':
			depth++
		case ch == ')':
			depth--
			if depth < 0 {
				return true
			}
		case ch == '+':
			if i != 0 {
				return true
			}
		default:
			return true
		}
	}
	return depth != 0
}

// StripNonDigits returns only the decimal digits of raw, in order.
func StripNonDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if ch := raw[i]; ch >= '0' && ch <= '9' {
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// StripLeadingZeros removes every leading '0'. A string of only zeros
// reduces to the empty string.
func StripLeadingZeros(ds string) string {
	return strings.TrimLeft(ds, "0")
}

package phone

import "strings"

// Format renders raw in the requested style. It returns false when raw does
// not normalise. E164 is the canonical form; International is the country
// code plus the spaced national grouping; National drops the country code;
// RFC3966 is a tel: URI with the national digits in hyphenated groups of
// three.
func (r *Registry) Format(raw string, style Style) (string, bool) {
	norm, ok := r.Normalize(raw)
	if !ok {
		return "", false
	}
	c, ok := resolve(r.countries, norm[1:])
	if !ok {
		return "", false
	}
	code := norm[1 : 1+c.PrefixDigits()]
	national := norm[1+c.PrefixDigits():]

	switch style {
	case E164:
		return norm, true
	case International:
		return "+" + code + " " + formatNational(national, c), true
	case National:
		return formatNational(national, c), true
	case RFC3966:
		var b strings.Builder
		b.Grow(len(norm) + len(national)/3 + 5)
		b.WriteString("tel:+")
		b.WriteString(code)
		for i := 0; i < len(national); i += 3 {
			b.WriteByte('-')
			end := i + 3
			if end > len(national) {
				end = len(national)
			}
			b.WriteString(national[i:end])
		}
		return b.String(), true
	}
	return "", false
}

// formatNational applies the per-country display grouping. Only a few plans
// have dedicated patterns; everything else splits at the midpoint once the
// number is long enough to be worth splitting.
func formatNational(national string, c Country) string {
	switch c.Code {
	case "US", "CA":
		if len(national) == 10 {
			return "(" + national[:3] + ") " + national[3:6] + "-" + national[6:]
		}
	case "GB":
		if len(national) >= 10 {
			return national[:4] + " " + national[4:7] + " " + national[7:]
		}
	case "DE":
		if len(national) >= 10 {
			return national[:3] + " " + national[3:]
		}
	default:
		if len(national) >= 7 {
			mid := len(national) / 2
			return national[:mid] + " " + national[mid:]
		}
	}
	return national
}

// Format renders raw in the requested style using the default registry.
func Format(raw string, style Style) (string, bool) {
	return defaultRegistry.Format(raw, style)
}

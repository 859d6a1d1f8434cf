package phone

import (
	"slices"
	"strconv"
)

// SuggestCorrections proposes valid numbers an invalid input was probably
// meant to be. A valid input is returned as its own single suggestion. With
// a territory hint the input is retried under that country's prefix,
// including trimmed variants when too long and single-digit-prepended
// variants when too short; without a hint a fixed list of common countries
// is probed instead. At most five deduplicated suggestions are returned, in
// sorted order.
func (r *Registry) SuggestCorrections(raw, hint string) []string {
	if r.IsValid(raw) {
		return []string{raw}
	}

	var suggestions []string
	cleaned := StripNonDigits(raw)

	tryPrefix := func(c Country, ds string) {
		s := "+" + strconv.Itoa(c.Prefix) + ds
		if r.IsValid(s) {
			suggestions = append(suggestions, s)
		}
	}

	if hint != "" {
		if c, ok := r.ByCode(hint); ok {
			tryPrefix(c, cleaned)
			if len(cleaned) > 15 {
				for i := 1; i <= len(cleaned)-7; i++ {
					s := "+" + strconv.Itoa(c.Prefix) + cleaned[i:]
					if r.IsValid(s) {
						suggestions = append(suggestions, s)
						break
					}
				}
			}
			if len(cleaned) < 10 {
				for d := byte('0'); d <= '9'; d++ {
					tryPrefix(c, string(d)+cleaned)
				}
			}
		}
	} else {
		for _, code := range []string{"US", "GB", "DE", "FR", "IN", "AU", "CA"} {
			if c, ok := r.ByCode(code); ok {
				tryPrefix(c, cleaned)
			}
		}
	}

	slices.Sort(suggestions)
	suggestions = slices.Compact(suggestions)
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

// IsPotentiallyValid reports whether raw could be a phone number under some
// formatting: between 7 and 15 digits and not all zeros. It is a cheap
// pre-filter, not validation.
func IsPotentiallyValid(raw string) bool {
	cleaned := StripNonDigits(raw)
	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}
	return StripLeadingZeros(cleaned) != ""
}

// GuessCountry returns the most likely country for a number that may or may
// not carry its country code. Exact prefix-and-length resolution wins;
// otherwise bare-length heuristics kick in (ten digits reads as US, eleven
// starting with 1 as US, eleven starting with 44 as GB, twelve starting
// with 49 as DE).
func (r *Registry) GuessCountry(raw string) (Country, bool) {
	cleaned := StripNonDigits(raw)
	if cleaned == "" {
		return Country{}, false
	}
	if c, ok := resolve(r.countries, cleaned); ok {
		return c, true
	}
	switch {
	case len(cleaned) == 10:
		return r.ByCode("US")
	case len(cleaned) == 11 && cleaned[0] == '1':
		return r.ByCode("US")
	case len(cleaned) == 11 && cleaned[:2] == "44":
		return r.ByCode("GB")
	case len(cleaned) == 12 && cleaned[:2] == "49":
		return r.ByCode("DE")
	}
	return Country{}, false
}

// SuggestCorrections proposes corrections using the default registry. An
// empty hint probes the common-country list.
func SuggestCorrections(raw, hint string) []string {
	return defaultRegistry.SuggestCorrections(raw, hint)
}

// GuessCountry guesses against the default registry.
func GuessCountry(raw string) (Country, bool) {
	return defaultRegistry.GuessCountry(raw)
}

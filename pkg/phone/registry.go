package phone

import "strings"

// Registry is an ordered, immutable set of country dialling rules. The zero
// value is unusable; construct one with NewRegistry or use DefaultRegistry.
type Registry struct {
	countries []Country
}

var defaultRegistry = &Registry{countries: countries}

// DefaultRegistry returns the shared registry backed by the built-in country
// table. It is safe for concurrent use.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from the given rules. The slice is evaluated
// in the order given and the first matching rule always wins, so callers that
// include several rules for one prefix must order them most-specific first.
// The rules are deep-copied; later mutation of the argument has no effect.
func NewRegistry(rules []Country) *Registry {
	copied := make([]Country, len(rules))
	for i, c := range rules {
		lengths := make([]int, len(c.PhoneLengths))
		copy(lengths, c.PhoneLengths)
		c.PhoneLengths = lengths
		copied[i] = c
	}
	return &Registry{countries: copied}
}

// Countries returns a copy of the registry's rules in resolution order.
func (r *Registry) Countries() []Country {
	out := make([]Country, len(r.countries))
	for i, c := range r.countries {
		lengths := make([]int, len(c.PhoneLengths))
		copy(lengths, c.PhoneLengths)
		c.PhoneLengths = lengths
		out[i] = c
	}
	return out
}

// ByCode returns the first rule whose territory code matches,
// case-insensitively.
func (r *Registry) ByCode(code string) (Country, bool) {
	for _, c := range r.countries {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Country{}, false
}

// ExtractCountry resolves the country a raw number dials into. The input is
// filtered and reduced to digits first, so both "+12025550173" and
// "1-202-555-0173" resolve to the United States.
func (r *Registry) ExtractCountry(raw string) (Country, bool) {
	if ContainsInvalidCharacter(raw) {
		return Country{}, false
	}
	digits := StripLeadingZeros(StripNonDigits(raw))
	return resolve(r.countries, digits)
}

// ExtractCountry resolves raw against the default registry.
func ExtractCountry(raw string) (Country, bool) {
	return defaultRegistry.ExtractCountry(raw)
}

type digits interface {
	~string | ~[]byte
}

// resolve finds the first rule whose prefix matches the leading digits of ds
// and whose accepted lengths contain the remaining digit count. ds must be
// bare digits with leading zeros already stripped.
func resolve[S digits](rules []Country, ds S) (Country, bool) {
	for _, c := range rules {
		k := c.PrefixDigits()
		if len(ds) < k {
			continue
		}
		if leadingValue(ds, k) != c.Prefix {
			continue
		}
		if c.AcceptsLength(len(ds) - k) {
			return c, true
		}
	}
	return Country{}, false
}

func leadingValue[S digits](ds S, k int) int {
	v := 0
	for i := 0; i < k; i++ {
		v = v*10 + int(ds[i]-'0')
	}
	return v
}

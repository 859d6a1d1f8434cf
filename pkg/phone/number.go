package phone

import "fmt"

// Number is a parsed, validated phone number. Two Numbers refer to the same
// line exactly when their Normalized forms are equal; Original preserves the
// caller's spelling for display and audit trails.
type Number struct {
	Original   string
	Normalized string
	Country    Country
	Type       Type
}

// Parse validates raw against the registry and captures its canonical form,
// country and coarse type. It returns ErrInvalidNumber when raw does not
// normalise.
func (r *Registry) Parse(raw string) (*Number, error) {
	norm, ok := r.Normalize(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	c, _ := resolve(r.countries, norm[1:])
	t, _ := r.DetectType(norm)
	return &Number{
		Original:   raw,
		Normalized: norm,
		Country:    c,
		Type:       t,
	}, nil
}

// ParseWithCountry parses raw, retrying with the territory's dialling prefix
// when raw alone does not resolve. Original always preserves the caller's
// input, not the prefixed retry string.
func (r *Registry) ParseWithCountry(raw, code string) (*Number, error) {
	if n, err := r.Parse(raw); err == nil {
		return n, nil
	}
	c, ok := r.ByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	n, err := r.Parse(fmt.Sprintf("+%d%s", c.Prefix, StripNonDigits(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	n.Original = raw
	return n, nil
}

// Parse validates raw against the default registry.
func Parse(raw string) (*Number, error) {
	return defaultRegistry.Parse(raw)
}

// ParseWithCountry parses raw with a territory hint against the default
// registry.
func ParseWithCountry(raw, code string) (*Number, error) {
	return defaultRegistry.ParseWithCountry(raw, code)
}

// E164 returns the canonical "+<prefix><national>" form.
func (n *Number) E164() string {
	return n.Normalized
}

// NationalNumber returns the digits after the country code.
func (n *Number) NationalNumber() string {
	return n.Normalized[1+n.Country.PrefixDigits():]
}

// CountryCode returns the numeric dialling prefix.
func (n *Number) CountryCode() int {
	return n.Country.Prefix
}

// Format renders the number in the given style. The canonical form is
// returned when the style cannot be applied.
func (n *Number) Format(style Style) string {
	out, ok := Format(n.Normalized, style)
	if !ok {
		return n.Normalized
	}
	return out
}

// IsMobile reports whether the number classified as mobile.
func (n *Number) IsMobile() bool { return n.Type == Mobile }

// IsLandline reports whether the number classified as fixed line.
func (n *Number) IsLandline() bool { return n.Type == FixedLine }

// IsTollFree reports whether the number classified as toll-free.
func (n *Number) IsTollFree() bool { return n.Type == TollFree }

// String returns the canonical form.
func (n *Number) String() string {
	return n.Normalized
}

package phone

import "strconv"

// Normalize reduces raw to the canonical "+<prefix><national>" form. It
// returns false when raw fails the character filter or when no rule in the
// registry matches the digits.
//
// The pipeline: filter, keep digits only, drop leading zeros, resolve the
// country by prefix and national length, then drop any leading zeros left on
// the national part (trunk prefixes dialled after the country code).
func (r *Registry) Normalize(raw string) (string, bool) {
	out, ok := r.AppendNormalized(nil, raw)
	if !ok {
		return "", false
	}
	return string(out), true
}

// AppendNormalized appends the canonical form of raw to dst and returns the
// extended slice. On failure dst is returned unchanged. Output is identical
// to Normalize; the append form exists for callers normalising in bulk that
// want to reuse one buffer.
func (r *Registry) AppendNormalized(dst []byte, raw string) ([]byte, bool) {
	if ContainsInvalidCharacter(raw) {
		return dst, false
	}
	buf := make([]byte, 0, 32)
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch < '0' || ch > '9' {
			continue
		}
		if len(buf) == 0 && ch == '0' {
			continue
		}
		buf = append(buf, ch)
	}
	c, ok := resolve(r.countries, buf)
	if !ok {
		return dst, false
	}
	national := buf[c.PrefixDigits():]
	for len(national) > 0 && national[0] == '0' {
		national = national[1:]
	}
	dst = append(dst, '+')
	dst = append(dst, buf[:c.PrefixDigits()]...)
	dst = append(dst, national...)
	return dst, true
}

// NormalizeWithCountry normalises raw, retrying with the given territory's
// dialling prefix when raw alone does not resolve. The retry prepends
// "+<prefix>" to the bare digits of raw, which recovers nationally dialled
// numbers like "0645342545" once the caller knows they are French.
func (r *Registry) NormalizeWithCountry(raw, code string) (string, bool) {
	if s, ok := r.Normalize(raw); ok {
		return s, true
	}
	c, ok := r.ByCode(code)
	if !ok {
		return "", false
	}
	return r.Normalize("+" + strconv.Itoa(c.Prefix) + StripNonDigits(raw))
}

// IsValid reports whether raw normalises under the registry.
func (r *Registry) IsValid(raw string) bool {
	_, ok := r.Normalize(raw)
	return ok
}

// Equal reports whether a and b normalise to the same canonical form. It is
// false when either side fails to normalise, including when both fail.
func (r *Registry) Equal(a, b string) bool {
	na, ok := r.Normalize(a)
	if !ok {
		return false
	}
	nb, ok := r.Normalize(b)
	if !ok {
		return false
	}
	return na == nb
}

// Normalize resolves raw against the default registry.
func Normalize(raw string) (string, bool) {
	return defaultRegistry.Normalize(raw)
}

// AppendNormalized appends the canonical form of raw using the default
// registry.
func AppendNormalized(dst []byte, raw string) ([]byte, bool) {
	return defaultRegistry.AppendNormalized(dst, raw)
}

// NormalizeWithCountry normalises raw with a territory hint against the
// default registry.
func NormalizeWithCountry(raw, code string) (string, bool) {
	return defaultRegistry.NormalizeWithCountry(raw, code)
}

// IsValid reports whether raw normalises under the default registry.
func IsValid(raw string) bool {
	return defaultRegistry.IsValid(raw)
}

// Equal compares two raw numbers under the default registry.
func Equal(a, b string) bool {
	return defaultRegistry.Equal(a, b)
}

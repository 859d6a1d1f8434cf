package phone

// Batch helpers apply the single-number operations element-wise. Results are
// positional: out[i] always corresponds to raws[i] and a bad element never
// aborts the rest. Absence is encoded in the element type (false, empty
// string, zero Country), not by shortening the slice.

// ValidateBatch reports validity per input.
func (r *Registry) ValidateBatch(raws []string) []bool {
	out := make([]bool, len(raws))
	for i, raw := range raws {
		out[i] = r.IsValid(raw)
	}
	return out
}

// NormalizeBatch normalises per input; elements that fail are left as the
// empty string.
func (r *Registry) NormalizeBatch(raws []string) []string {
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i], _ = r.Normalize(raw)
	}
	return out
}

// CountriesBatch resolves the country per input; unresolvable elements are
// the zero Country (empty Code).
func (r *Registry) CountriesBatch(raws []string) []Country {
	out := make([]Country, len(raws))
	for i, raw := range raws {
		out[i], _ = r.ExtractCountry(raw)
	}
	return out
}

// ClassifyBatch detects the number type per input; invalid elements are
// Unknown.
func (r *Registry) ClassifyBatch(raws []string) []Type {
	out := make([]Type, len(raws))
	for i, raw := range raws {
		out[i], _ = r.DetectType(raw)
	}
	return out
}

// Analysis is the full per-number result of AnalyzeBatch. When Valid is
// false the Normalized, Country and Type fields hold zero values.
type Analysis struct {
	Original   string
	Valid      bool
	Normalized string
	Country    Country
	Type       Type
}

// AnalyzeBatch runs validation, normalisation, country resolution and type
// detection per input in one pass.
func (r *Registry) AnalyzeBatch(raws []string) []Analysis {
	out := make([]Analysis, len(raws))
	for i, raw := range raws {
		a := Analysis{Original: raw}
		if norm, ok := r.Normalize(raw); ok {
			a.Valid = true
			a.Normalized = norm
			a.Country, _ = resolve(r.countries, norm[1:])
			a.Type, _ = r.DetectType(norm)
		}
		out[i] = a
	}
	return out
}

// GroupEquivalent partitions raws into groups that normalise to the same
// canonical number. Groups appear in first-occurrence order and keep the
// original spellings; every invalid input forms its own singleton group.
func (r *Registry) GroupEquivalent(raws []string) [][]string {
	var groups [][]string
	index := make(map[string]int)
	for _, raw := range raws {
		if norm, ok := r.Normalize(raw); ok {
			if i, seen := index[norm]; seen {
				groups[i] = append(groups[i], raw)
				continue
			}
			index[norm] = len(groups)
		}
		groups = append(groups, []string{raw})
	}
	return groups
}

// ValidateBatch validates raws against the default registry.
func ValidateBatch(raws []string) []bool {
	return defaultRegistry.ValidateBatch(raws)
}

// NormalizeBatch normalises raws against the default registry.
func NormalizeBatch(raws []string) []string {
	return defaultRegistry.NormalizeBatch(raws)
}

// CountriesBatch resolves raws against the default registry.
func CountriesBatch(raws []string) []Country {
	return defaultRegistry.CountriesBatch(raws)
}

// ClassifyBatch classifies raws against the default registry.
func ClassifyBatch(raws []string) []Type {
	return defaultRegistry.ClassifyBatch(raws)
}

// AnalyzeBatch analyses raws against the default registry.
func AnalyzeBatch(raws []string) []Analysis {
	return defaultRegistry.AnalyzeBatch(raws)
}

// GroupEquivalent groups raws by equivalence under the default registry.
func GroupEquivalent(raws []string) [][]string {
	return defaultRegistry.GroupEquivalent(raws)
}

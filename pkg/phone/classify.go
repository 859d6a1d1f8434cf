package phone

// DetectType normalises raw and classifies it. The second return is false
// when raw does not normalise; an unclassifiable but valid number yields
// (Unknown, true).
func (r *Registry) DetectType(raw string) (Type, bool) {
	norm, ok := r.Normalize(raw)
	if !ok {
		return Unknown, false
	}
	c, ok := resolve(r.countries, norm[1:])
	if !ok {
		return Unknown, false
	}
	return ClassifyNational(norm[1+c.PrefixDigits():], c), true
}

// ClassifyNational categorises a national number (country code and trunk
// zeros already removed) under the given country's rules. Countries without
// a dedicated table fall through to a first-digit heuristic; its answers are
// best-effort and frequently wrong for real numbering plans.
func ClassifyNational(national string, c Country) Type {
	if national == "" {
		return Unknown
	}
	switch c.Code {
	case "US", "CA":
		return classifyNANP(national)
	case "GB":
		return classifyGB(national)
	case "DE":
		return classifyDE(national)
	case "FR":
		return classifyFR(national)
	case "AU":
		return classifyAU(national)
	case "IN":
		return classifyIN(national)
	}
	switch national[0] {
	case '6', '7', '8', '9':
		return Mobile
	case '1', '2', '3', '4', '5':
		return FixedLine
	case '0':
		return TollFree
	}
	return Unknown
}

// classifyNANP covers the shared US/CA plan. Mobile and fixed-line numbers
// are indistinguishable by prefix there, so anything that is not a service
// code classifies as FixedLine.
func classifyNANP(national string) Type {
	switch prefixOf(national, 3) {
	case "800", "833", "844", "855", "866", "877", "888":
		return TollFree
	case "900", "976":
		return PremiumRate
	}
	if len(national) == 10 {
		return FixedLine
	}
	return Unknown
}

func classifyGB(national string) Type {
	switch national[0] {
	case '7':
		return Mobile
	case '8':
		switch prefixOf(national, 2) {
		case "80", "84", "87":
			return TollFree
		case "81", "82", "89":
			return PremiumRate
		}
		return SharedCost
	case '1', '2':
		return FixedLine
	case '3':
		return Uan
	case '5':
		return Voip
	}
	return Unknown
}

func classifyDE(national string) Type {
	switch national[0] {
	case '1':
		switch prefixOf(national, 2) {
		case "15", "16", "17":
			return Mobile
		case "18":
			return SharedCost
		case "19":
			return PremiumRate
		}
		return Unknown
	case '0':
		// Only reachable through ClassifyNational: the normaliser strips
		// trunk zeros before classification.
		return TollFree
	}
	return FixedLine
}

func classifyFR(national string) Type {
	switch national[0] {
	case '6', '7':
		return Mobile
	case '8':
		return TollFree
	case '1', '2', '3', '4', '5', '9':
		return FixedLine
	}
	return Unknown
}

func classifyAU(national string) Type {
	switch national[0] {
	case '4':
		return Mobile
	case '1':
		switch prefixOf(national, 3) {
		case "180", "188":
			return TollFree
		case "190":
			return PremiumRate
		}
		return Unknown
	case '2', '3', '7', '8':
		return FixedLine
	}
	return Unknown
}

func classifyIN(national string) Type {
	switch national[0] {
	case '9', '8', '7', '6':
		return Mobile
	case '1', '2', '3', '4', '5':
		return FixedLine
	}
	return Unknown
}

// prefixOf returns the first n bytes of s, or all of s when shorter.
func prefixOf(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// DetectType classifies raw against the default registry.
func DetectType(raw string) (Type, bool) {
	return defaultRegistry.DetectType(raw)
}

// IsMobileNumber reports whether raw is a valid number classified as mobile.
func IsMobileNumber(raw string) bool {
	t, ok := DetectType(raw)
	return ok && t == Mobile
}

// IsLandlineNumber reports whether raw is a valid fixed-line number.
func IsLandlineNumber(raw string) bool {
	t, ok := DetectType(raw)
	return ok && t == FixedLine
}

// IsTollFreeNumber reports whether raw is a valid toll-free number.
func IsTollFreeNumber(raw string) bool {
	t, ok := DetectType(raw)
	return ok && t == TollFree
}

package phone

// Country is a single dialling rule: the international prefix, the ISO-like
// territory code and the national-number lengths the territory accepts once
// the prefix is removed. Values are copied out of the registry; mutating a
// copy has no effect on resolution.
type Country struct {
	Name         string
	Code         string
	Prefix       int
	PhoneLengths []int
}

// AcceptsLength reports whether the country accepts a national number of n
// digits.
func (c Country) AcceptsLength(n int) bool {
	for _, l := range c.PhoneLengths {
		if l == n {
			return true
		}
	}
	return false
}

// PrefixDigits returns the number of decimal digits in the dialling prefix.
// A prefix of magnitude zero still occupies one digit (the digit '0').
func (c Country) PrefixDigits() int {
	return countDigits(c.Prefix)
}

func countDigits(n int) int {
	if n == 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// Type is the coarse category of a phone number.
type Type int

const (
	Unknown Type = iota
	Mobile
	FixedLine
	TollFree
	PremiumRate
	SharedCost
	Voip
	PersonalNumber
	Pager
	Uan
	Emergency
	Voicemail
)

var typeNames = map[Type]string{
	Unknown:        "unknown",
	Mobile:         "mobile",
	FixedLine:      "fixed_line",
	TollFree:       "toll_free",
	PremiumRate:    "premium_rate",
	SharedCost:     "shared_cost",
	Voip:           "voip",
	PersonalNumber: "personal_number",
	Pager:          "pager",
	Uan:            "uan",
	Emergency:      "emergency",
	Voicemail:      "voicemail",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Style selects a presentation format for a normalised number.
type Style int

const (
	// E164 is the canonical form itself: +12025550173.
	E164 Style = iota
	// International is the country code followed by the spaced national
	// format: +1 (202) 555-0173.
	International
	// National is the country-specific grouping without the country code:
	// (202) 555-0173.
	National
	// RFC3966 is a tel: URI with the national digits in hyphenated groups
	// of three: tel:+1-202-555-017-3.
	RFC3966
)

func (s Style) String() string {
	switch s {
	case E164:
		return "e164"
	case International:
		return "international"
	case National:
		return "national"
	case RFC3966:
		return "rfc3966"
	default:
		return "unknown"
	}
}

package extract

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

// Candidate is one phone-number occurrence in scanned text. Start and End
// are byte offsets into the original text and Raw is exactly
// text[Start:End]. Normalized is empty when Valid is false.
type Candidate struct {
	Raw        string
	Normalized string
	Start      int
	End        int
	Valid      bool
}

// Scanner extracts phone numbers using a specific registry. The zero value
// is unusable; use New, or the package-level functions for the default
// registry.
type Scanner struct {
	reg *phone.Registry
}

// New returns a scanner that validates candidates against reg.
func New(reg *phone.Registry) *Scanner {
	return &Scanner{reg: reg}
}

var defaultScanner = New(phone.DefaultRegistry())

// All returns every candidate in text, valid or not, in source order.
// Candidates never overlap; scanning resumes after the last digit of each
// match.
func (s *Scanner) All(text string) []Candidate {
	return s.scan(text, phone.Country{})
}

// ValidOnly returns only the candidates that normalise.
func (s *Scanner) ValidOnly(text string) []Candidate {
	all := s.All(text)
	out := all[:0]
	for _, c := range all {
		if c.Valid {
			out = append(out, c)
		}
	}
	return out
}

// WithCountryHint scans like All but retries failed candidates under the
// given territory's dialling prefix, which recovers nationally dialled
// numbers such as "(202) 555-0173" in US text. An unknown code behaves like
// All.
func (s *Scanner) WithCountryHint(text, code string) []Candidate {
	hint, _ := s.reg.ByCode(code)
	return s.scan(text, hint)
}

// Count returns the number of candidates in text.
func (s *Scanner) Count(text string) int {
	return len(s.All(text))
}

func (s *Scanner) scan(text string, hint phone.Country) []Candidate {
	runes := []rune(text)
	// offs[i] is the byte offset of rune i; offs[len(runes)] is len(text).
	offs := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offs[i] = b
		b += utf8.RuneLen(r)
	}
	offs[len(runes)] = len(text)

	var out []Candidate
	i := 0
	for i < len(runes) {
		if !candidateStart(runes, i) {
			i++
			continue
		}
		lastDigit, ok := consumeCandidate(runes, i)
		if !ok {
			i++
			continue
		}
		raw := text[offs[i]:offs[lastDigit+1]]
		c := Candidate{
			Raw:   raw,
			Start: offs[i],
			End:   offs[lastDigit+1],
		}
		if norm, ok := s.reg.Normalize(raw); ok {
			c.Normalized = norm
			c.Valid = true
		} else if hint.Code != "" {
			retry := "+" + strconv.Itoa(hint.Prefix) + phone.StripNonDigits(raw)
			if norm, ok := s.reg.Normalize(retry); ok {
				c.Normalized = norm
				c.Valid = true
			}
		}
		out = append(out, c)
		i = lastDigit + 1
	}
	return out
}

// candidateStart reports whether a candidate may begin at runes[pos]: a '+'
// or '(' directly before a digit, or a digit that is not glued to a
// preceding word.
func candidateStart(runes []rune, pos int) bool {
	switch c := runes[pos]; {
	case c == '+' || c == '(':
		return pos+1 < len(runes) && isDigit(runes[pos+1])
	case isDigit(c):
		if pos > 0 {
			prev := runes[pos-1]
			if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
				return false
			}
		}
		return true
	}
	return false
}

// consumeCandidate walks forward from start over digits, parentheses and
// separators and returns the index of the last digit consumed. It reports
// false when fewer than seven digits turn up; consumption stops once the
// digit count passes fifteen. Separators are only eaten between digits,
// never trailing, so the candidate always ends on a digit.
func consumeCandidate(runes []rune, start int) (lastDigit int, ok bool) {
	end := start
	digits := 0
	lastDigit = start
	depth := 0

walk:
	for end < len(runes) {
		switch c := runes[end]; {
		case c == '+' && end == start:
			end++
		case isDigit(c):
			digits++
			lastDigit = end
			end++
		case c == '(':
			depth++
			end++
		case c == ')' && depth > 0:
			depth--
			end++
		case c == '-' || c == '.' || c == ' ':
			if digits > 0 && end+1 < len(runes) &&
				(isDigit(runes[end+1]) || runes[end+1] == '(') {
				end++
			} else {
				break walk
			}
		default:
			break walk
		}
		if digits > 15 {
			break
		}
	}
	if digits < 7 {
		return 0, false
	}
	return lastDigit, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// All scans text with the default registry.
func All(text string) []Candidate {
	return defaultScanner.All(text)
}

// ValidOnly scans text with the default registry, dropping invalid
// candidates.
func ValidOnly(text string) []Candidate {
	return defaultScanner.ValidOnly(text)
}

// WithCountryHint scans text with a territory hint under the default
// registry.
func WithCountryHint(text, code string) []Candidate {
	return defaultScanner.WithCountryHint(text, code)
}

// Count counts candidates in text under the default registry.
func Count(text string) int {
	return defaultScanner.Count(text)
}

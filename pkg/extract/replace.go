package extract

import "strings"

// Replace rewrites every candidate span in text with the value returned by
// repl. Text outside the candidate spans is preserved byte for byte.
func (s *Scanner) Replace(text string, repl func(Candidate) string) string {
	candidates := s.All(text)
	if len(candidates) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, c := range candidates {
		b.WriteString(text[last:c.Start])
		b.WriteString(repl(c))
		last = c.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Redact masks phone numbers for display, keeping the last visible digits
// of each number: "+12025550173" with four visible becomes "*******0173".
// Separators are not preserved in the mask. When visible is zero, or at
// least the number's digit count, the whole match collapses to "[PHONE]".
func (s *Scanner) Redact(text string, visible int) string {
	return s.Replace(text, func(c Candidate) string {
		digits := make([]byte, 0, len(c.Raw))
		for i := 0; i < len(c.Raw); i++ {
			if ch := c.Raw[i]; ch >= '0' && ch <= '9' {
				digits = append(digits, ch)
			}
		}
		if visible <= 0 || visible >= len(digits) {
			return "[PHONE]"
		}
		hidden := len(digits) - visible
		var b strings.Builder
		b.Grow(len(digits))
		for i := 0; i < hidden; i++ {
			b.WriteByte('*')
		}
		b.Write(digits[hidden:])
		return b.String()
	})
}

// Replace rewrites candidates in text using the default registry.
func Replace(text string, repl func(Candidate) string) string {
	return defaultScanner.Replace(text, repl)
}

// Redact masks candidates in text using the default registry.
func Redact(text string, visible int) string {
	return defaultScanner.Redact(text, visible)
}

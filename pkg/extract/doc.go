// Package extract finds phone numbers in free-form text.
//
// The scanner walks the text rune by rune, starts a candidate at a '+', an
// opening parenthesis or a digit not glued to a preceding word, and consumes
// digits and common separators until the shape stops looking like a phone
// number. Candidates keep their exact source spelling and byte offsets, so
// Raw == text[Start:End] holds even in multibyte text:
//
//	for _, c := range extract.All("call +1-202-555-0173 now") {
//		fmt.Println(c.Raw, c.Normalized, c.Valid)
//	}
//
// Anything with fewer than seven digits is noise and never reported;
// candidates are cut off after fifteen digits. A candidate can be reported
// and still be invalid (Valid false, empty Normalized) when its digits
// resolve to no country.
//
// Replace and Redact rewrite the text around the same candidate spans,
// which keeps everything outside the matched numbers byte-identical.
package extract

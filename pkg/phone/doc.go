// Package phone validates, normalises, classifies and formats telephone
// numbers against a static, ordered table of country dialling rules.
//
// The canonical representation is the E.164-style form: a leading '+'
// followed only by decimal digits, where the digits immediately after the
// '+' decode to exactly one country's dialling prefix. Two inputs describe
// the same number if and only if they normalise to the same canonical
// string:
//
//	normalized, ok := phone.Normalize("+1 (202) 555-0173")
//	// normalized == "+12025550173", ok == true
//
//	phone.Equal("+12025550173", "1-202-555-0173") // true
//
// # Country resolution
//
// Resolution walks the registry in table order and returns the first rule
// whose dialling prefix matches the leading digits and whose accepted
// national lengths contain the remaining digit count. Table order is part
// of the observable behaviour: several territories legitimately share a
// dialling prefix (GB and GB-CYM both use 44) and the earlier entry wins.
// Do not rely on ties resolving any other way.
//
// The built-in table is a simplified approximation of real numbering-plan
// rules, not a full ITU-compliant data set. A custom table can be supplied
// through NewRegistry; every operation is also available as a method on
// Registry.
//
// # Type detection
//
// DetectType maps a number to a coarse category (mobile, fixed line,
// toll-free, ...). Countries without a dedicated rule table fall back to a
// first-digit heuristic that is documented best-effort behaviour: it will
// misclassify many real numbers. Treat the result as a hint, not a fact.
//
// # Concurrency
//
// The registry is immutable after construction and all package-level
// functions are pure, so everything here is safe for concurrent use. The
// one exception is Set, which is a plain mutable collection owned by its
// creator.
package phone

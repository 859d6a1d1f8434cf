package phone

// Set is a collection of phone numbers deduplicated by canonical form:
// "+1-202-555-0173" and "(202) 555-0173" occupy one slot. Unlike the rest of
// the package a Set is mutable and not safe for concurrent use.
type Set struct {
	reg     *Registry
	numbers map[string]*Number
}

// NewSet returns an empty set backed by the default registry.
func NewSet() *Set {
	return DefaultRegistry().NewSet()
}

// NewSet returns an empty set that parses members against r.
func (r *Registry) NewSet() *Set {
	return &Set{reg: r, numbers: make(map[string]*Number)}
}

// Add parses raw and inserts it. It reports whether the set grew; invalid
// input and duplicates both return false.
func (s *Set) Add(raw string) bool {
	n, err := s.reg.Parse(raw)
	if err != nil {
		return false
	}
	if _, dup := s.numbers[n.Normalized]; dup {
		return false
	}
	s.numbers[n.Normalized] = n
	return true
}

// Contains reports whether any spelling of raw's number is in the set.
func (s *Set) Contains(raw string) bool {
	norm, ok := s.reg.Normalize(raw)
	if !ok {
		return false
	}
	_, present := s.numbers[norm]
	return present
}

// Remove deletes raw's number and reports whether it was present.
func (s *Set) Remove(raw string) bool {
	norm, ok := s.reg.Normalize(raw)
	if !ok {
		return false
	}
	if _, present := s.numbers[norm]; !present {
		return false
	}
	delete(s.numbers, norm)
	return true
}

// Find returns the stored Number equivalent to raw, keeping whatever
// Original spelling was added first.
func (s *Set) Find(raw string) (*Number, bool) {
	norm, ok := s.reg.Normalize(raw)
	if !ok {
		return nil, false
	}
	n, present := s.numbers[norm]
	return n, present
}

// Len returns the count of unique numbers.
func (s *Set) Len() int {
	return len(s.numbers)
}

// Numbers returns the members in unspecified order.
func (s *Set) Numbers() []*Number {
	out := make([]*Number, 0, len(s.numbers))
	for _, n := range s.numbers {
		out = append(out, n)
	}
	return out
}

// Normalized returns the canonical forms of the members in unspecified
// order.
func (s *Set) Normalized() []string {
	out := make([]string, 0, len(s.numbers))
	for norm := range s.numbers {
		out = append(out, norm)
	}
	return out
}

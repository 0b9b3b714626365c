package issue

// Set is a collection of unique issues that remembers insertion order.
type Set struct {
	items []Issue
	seen  map[Fingerprint]struct{}
}

func NewSet(issues ...Issue) *Set {
	s := &Set{seen: make(map[Fingerprint]struct{})}
	s.Add(issues...)
	return s
}

// Add inserts issues that are not yet part of the set.
func (s *Set) Add(issues ...Issue) {
	for _, i := range issues {
		f := i.Fingerprint()
		if _, ok := s.seen[f]; ok {
			continue
		}
		s.seen[f] = struct{}{}
		s.items = append(s.items, i)
	}
}

func (s *Set) Contains(i Issue) bool {
	_, ok := s.seen[i.Fingerprint()]
	return ok
}

func (s *Set) Len() int {
	return len(s.items)
}

// List returns the issues in insertion order.
func (s *Set) List() []Issue {
	out := make([]Issue, len(s.items))
	copy(out, s.items)
	return out
}

// AtLeast reports whether any issue in the list has a severity at or above the given minimum.
func AtLeast(issues []Issue, minimum Severity) bool {
	for _, i := range issues {
		if i.Severity.AtLeast(minimum) {
			return true
		}
	}
	return false
}

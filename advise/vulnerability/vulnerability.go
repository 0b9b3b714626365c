package vulnerability

import (
	"fmt"

	"github.com/advise-tools/advise/internal"
)

var ErrCannotMerge = fmt.Errorf("unable to merge vulnerabilities with differing IDs")

// Vulnerability is a single vulnerability reported by an advisor. Summary and Description are optional; several
// advisors may report the same ID with differing references.
type Vulnerability struct {
	ID          string      `json:"id" yaml:"id"`
	Summary     *string     `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	References  []Reference `json:"references" yaml:"references"`
}

func (v Vulnerability) String() string {
	return fmt.Sprintf("Vulnerability(id=%s references=%d)", v.ID, len(v.References))
}

// Clone returns a copy of the vulnerability that shares no mutable state with the receiver.
func (v Vulnerability) Clone() Vulnerability {
	c := v
	c.Summary = cloneString(v.Summary)
	c.Description = cloneString(v.Description)
	if v.References != nil {
		c.References = make([]Reference, len(v.References))
		copy(c.References, v.References)
	}
	return c
}

func (v Vulnerability) hasText() bool {
	return v.Summary != nil || v.Description != nil
}

// HighestScore returns the highest rated reference, if any reference is rated. References are ranked by severity
// first and by score second. Scores and severities are derived from CVSS vectors where references only carry a
// vector.
func (v Vulnerability) HighestScore() (Reference, bool) {
	var (
		best  Reference
		found bool
	)
	for _, r := range v.References {
		r = r.Rated()
		if r.Score == 0 && r.Severity == "" {
			continue
		}
		if !found || r.ratesAbove(best) {
			best = r
			found = true
		}
	}
	return best, found
}

// Merge combines the receiver with other reports of the same vulnerability. The references of all inputs are
// unioned (duplicates removed, first-seen order kept); summary and description come from the first input that
// has either set, falling back to the receiver.
func (v Vulnerability) Merge(others ...Vulnerability) (Vulnerability, error) {
	group := append([]Vulnerability{v}, others...)
	for _, o := range others {
		if o.ID != v.ID {
			return Vulnerability{}, fmt.Errorf("%w: %q != %q", ErrCannotMerge, v.ID, o.ID)
		}
	}
	return mergeGroup(group), nil
}

// MergeByID groups the given vulnerabilities by ID and merges each group into a single vulnerability. Groups are
// returned in the order their ID was first seen. The result is never nil.
func MergeByID(vulnerabilities []Vulnerability) []Vulnerability {
	var order []string
	groups := make(map[string][]Vulnerability)
	for _, v := range vulnerabilities {
		if _, ok := groups[v.ID]; !ok {
			order = append(order, v.ID)
		}
		groups[v.ID] = append(groups[v.ID], v)
	}

	merged := make([]Vulnerability, 0, len(order))
	for _, id := range order {
		merged = append(merged, mergeGroup(groups[id]))
	}
	return merged
}

// mergeGroup expects a non-empty group of vulnerabilities sharing one ID.
func mergeGroup(group []Vulnerability) Vulnerability {
	references := internal.NewOrderedSet[Reference]()
	for _, v := range group {
		references.Add(v.References...)
	}

	entry := group[0]
	for _, v := range group {
		if v.hasText() {
			entry = v
			break
		}
	}

	entry.Summary = cloneString(entry.Summary)
	entry.Description = cloneString(entry.Description)
	entry.References = references.ToSlice()
	return entry
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

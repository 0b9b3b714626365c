/*
Package filter provides named, inspectable predicates over advisor results. Each predicate is a plain value whose
configuration (e.g. a minimum issue severity) can be examined and rendered back to the textual form understood by
Parse.
*/
package filter

import (
	"strings"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/issue"
)

// Filter decides whether an advisor result is selected.
type Filter interface {
	Matches(advisor.Result) bool
	String() string
}

var (
	_ Filter = Vulnerabilities{}
	_ Filter = Defects{}
	_ Filter = Issues{}
	_ Filter = All{}
	_ Filter = Any{}
	_ Filter = Not{}
	_ Filter = Func{}
)

var (
	// ResultsWithVulnerabilities matches only results that contain vulnerabilities.
	ResultsWithVulnerabilities Filter = Vulnerabilities{}

	// ResultsWithDefects matches only results that contain defects.
	ResultsWithDefects Filter = Defects{}
)

// ResultsWithIssues matches results with an issue whose severity is at least minSeverity. When capability is
// given, only results from advisors declaring that capability are considered.
func ResultsWithIssues(minSeverity issue.Severity, capability *advisor.Capability) Filter {
	return Issues{MinSeverity: minSeverity, Capability: capability}
}

// Vulnerabilities matches results reporting at least one vulnerability.
type Vulnerabilities struct{}

func (Vulnerabilities) Matches(r advisor.Result) bool {
	return len(r.Vulnerabilities) > 0
}

func (Vulnerabilities) String() string {
	return vulnerabilitiesTerm
}

// Defects matches results reporting at least one defect.
type Defects struct{}

func (Defects) Matches(r advisor.Result) bool {
	return len(r.Defects) > 0
}

func (Defects) String() string {
	return defectsTerm
}

// Issues matches results with an issue at or above MinSeverity, optionally restricted to advisors that declare
// Capability. The zero value matches any result with at least one issue.
type Issues struct {
	MinSeverity issue.Severity
	Capability  *advisor.Capability
}

func (f Issues) Matches(r advisor.Result) bool {
	if f.Capability != nil && !r.Advisor.Has(*f.Capability) {
		return false
	}
	return issue.AtLeast(r.Summary.Issues, f.MinSeverity)
}

func (f Issues) String() string {
	parts := []string{issuesTerm}
	if f.MinSeverity > issue.HintSeverity || f.Capability != nil {
		sev := f.MinSeverity
		if sev < issue.HintSeverity {
			sev = issue.HintSeverity
		}
		parts = append(parts, strings.ToLower(sev.String()))
	}
	if f.Capability != nil {
		parts = append(parts, strings.ToLower(f.Capability.String()))
	}
	return strings.Join(parts, termArgSeparator)
}

// All matches results that every contained filter matches. An empty All matches everything.
type All []Filter

func (a All) Matches(r advisor.Result) bool {
	for _, f := range a {
		if !f.Matches(r) {
			return false
		}
	}
	return true
}

func (a All) String() string {
	return join(a, andSeparator)
}

// Any matches results that at least one contained filter matches. An empty Any matches nothing.
type Any []Filter

func (a Any) Matches(r advisor.Result) bool {
	for _, f := range a {
		if f.Matches(r) {
			return true
		}
	}
	return false
}

func (a Any) String() string {
	return join(a, orSeparator)
}

// Not inverts the contained filter. A nil Filter is treated like All{}, so the zero Not matches nothing.
type Not struct {
	Filter Filter
}

func (n Not) Matches(r advisor.Result) bool {
	return !OrAll(n.Filter).Matches(r)
}

func (n Not) String() string {
	return negation + OrAll(n.Filter).String()
}

// Func adapts an arbitrary predicate for the cases no named filter covers. Name is used for String.
type Func struct {
	Name string
	Fn   func(advisor.Result) bool
}

// Matches reports false when Fn is unset.
func (f Func) Matches(r advisor.Result) bool {
	if f.Fn == nil {
		return false
	}
	return f.Fn(r)
}

func (f Func) String() string {
	return f.Name
}

// OrAll returns f, or All{} (matching every result) when f is nil.
func OrAll(f Filter) Filter {
	if f == nil {
		return All{}
	}
	return f
}

func join(filters []Filter, sep string) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, sep)
}

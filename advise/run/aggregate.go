package run

import (
	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/defect"
	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/pkg"
	"github.com/advise-tools/advise/advise/vulnerability"
)

// Issues returns, per package, the union of the issues reported by all advisors. Packages without any issue are
// not part of the result.
func (r Run) Issues() map[pkg.Identifier][]issue.Issue {
	sets := make(map[pkg.Identifier]*issue.Set)
	for id, results := range r.results {
		for _, result := range results {
			if len(result.Summary.Issues) == 0 {
				continue
			}
			set, ok := sets[id]
			if !ok {
				set = issue.NewSet()
				sets[id] = set
			}
			set.Add(result.Summary.Issues...)
		}
	}

	out := make(map[pkg.Identifier][]issue.Issue, len(sets))
	for id, set := range sets {
		out[id] = set.List()
	}
	return out
}

// IssuesFor returns the union of the issues reported for the given package.
func (r Run) IssuesFor(id pkg.Identifier) []issue.Issue {
	set := issue.NewSet()
	for _, result := range r.results[id] {
		set.Add(result.Summary.Issues...)
	}
	return set.List()
}

// Vulnerabilities returns, per package, the vulnerabilities found by all advisors. Reports of the same
// vulnerability from different advisors are merged. Every package of the run is present, possibly with an
// empty list.
func (r Run) Vulnerabilities() map[pkg.Identifier][]vulnerability.Vulnerability {
	out := make(map[pkg.Identifier][]vulnerability.Vulnerability, len(r.results))
	for id := range r.results {
		out[id] = r.VulnerabilitiesFor(id)
	}
	return out
}

// VulnerabilitiesFor returns the merged vulnerabilities found for the given package; it is empty if the package
// is unknown.
func (r Run) VulnerabilitiesFor(id pkg.Identifier) []vulnerability.Vulnerability {
	var all []vulnerability.Vulnerability
	for _, result := range r.results[id] {
		all = append(all, result.Vulnerabilities...)
	}
	return vulnerability.MergeByID(all)
}

// DefectsFor returns the defects found for the given package by all advisors. Defects are concatenated, never
// merged, since defects from different advisors cannot be compared.
func (r Run) DefectsFor(id pkg.Identifier) []defect.Defect {
	out := make([]defect.Defect, 0)
	for _, result := range r.results[id] {
		for _, d := range result.Defects {
			out = append(out, d.Clone())
		}
	}
	return out
}

// Filter returns the results that pass the given filter. Packages without any passing result are dropped. A nil
// filter passes every result.
func (r Run) Filter(f filter.Filter) map[pkg.Identifier][]advisor.Result {
	f = filter.OrAll(f)
	out := make(map[pkg.Identifier][]advisor.Result)
	for id, results := range r.results {
		var kept []advisor.Result
		for _, result := range results {
			if f.Matches(result) {
				kept = append(kept, result.Clone())
			}
		}
		if len(kept) > 0 {
			out[id] = kept
		}
	}
	return out
}

// Filtered is like Filter but returns a run carrying the metadata of r.
func (r Run) Filtered(f filter.Filter) Run {
	return r.WithResults(r.Filter(f))
}

// Any reports whether any result of the run passes the filter. A nil filter passes every result.
func (r Run) Any(f filter.Filter) bool {
	f = filter.OrAll(f)
	for _, results := range r.results {
		for _, result := range results {
			if f.Matches(result) {
				return true
			}
		}
	}
	return false
}

package models

import (
	"sort"

	"github.com/scylladb/go-set/strset"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/defect"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/pkg"
	"github.com/advise-tools/advise/advise/run"
	"github.com/advise-tools/advise/advise/vulnerability"
)

// Package is the report of everything the advisors found for a single package.
type Package struct {
	ID              string                        `json:"id" yaml:"id"`
	Type            string                        `json:"type" yaml:"type"`
	Namespace       string                        `json:"namespace" yaml:"namespace"`
	Name            string                        `json:"name" yaml:"name"`
	Version         string                        `json:"version" yaml:"version"`
	PURL            string                        `json:"purl" yaml:"purl"`
	Advisors        []string                      `json:"advisors" yaml:"advisors"`
	Vulnerabilities []vulnerability.Vulnerability `json:"vulnerabilities" yaml:"vulnerabilities"`
	Defects         []defect.Defect               `json:"defects" yaml:"defects"`
	Issues          []Issue                       `json:"issues" yaml:"issues"`
}

// Issue is an advisor issue along with a stable identifier.
type Issue struct {
	ID          string `json:"id" yaml:"id"`
	issue.Issue `yaml:",inline"`
}

func newPackage(id pkg.Identifier, r run.Run) Package {
	return Package{
		ID:              id.String(),
		Type:            id.Type,
		Namespace:       id.Namespace,
		Name:            id.Name,
		Version:         id.Version,
		PURL:            id.PackageURL(),
		Advisors:        advisorNames(r.ResultsFor(id)),
		Vulnerabilities: r.VulnerabilitiesFor(id),
		Defects:         r.DefectsFor(id),
		Issues:          newIssues(r.IssuesFor(id)),
	}
}

func advisorNames(results []advisor.Result) []string {
	names := strset.New()
	for _, result := range results {
		names.Add(result.Advisor.Name)
	}
	list := names.List()
	sort.Strings(list)
	return list
}

func newIssues(issues []issue.Issue) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, Issue{
			ID:    i.Fingerprint().ID(),
			Issue: i,
		})
	}
	return out
}

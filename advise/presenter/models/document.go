package models

import (
	"time"

	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/run"
	"github.com/advise-tools/advise/internal"
	"github.com/advise-tools/advise/internal/version"
)

// Document represents the JSON document to be presented
type Document struct {
	Run        RunInfo    `json:"run" yaml:"run"`
	Packages   []Package  `json:"packages" yaml:"packages"`
	Descriptor Descriptor `json:"descriptor" yaml:"descriptor"`
}

// RunInfo summarizes the advisor run the document was created from.
type RunInfo struct {
	StartTime   time.Time       `json:"start_time" yaml:"start_time"`
	EndTime     time.Time       `json:"end_time" yaml:"end_time"`
	Environment run.Environment `json:"environment" yaml:"environment"`
	Filter      string          `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// NewDocument creates and populates a new Document from the results of the run that pass the filter. A nil filter
// selects every result.
func NewDocument(r run.Run, f filter.Filter, appConfig interface{}) Document {
	var filterStr string
	if f != nil {
		r = r.Filtered(f)
		filterStr = f.String()
	}

	// we must preallocate the packages to ensure the JSON document does not show "null" when nothing was found
	packages := make([]Package, 0, r.Len())
	for _, id := range r.Identifiers() {
		packages = append(packages, newPackage(id, r))
	}

	return Document{
		Run: RunInfo{
			StartTime:   r.StartTime(),
			EndTime:     r.EndTime(),
			Environment: r.Environment(),
			Filter:      filterStr,
		},
		Packages: packages,
		Descriptor: Descriptor{
			Name:          internal.ApplicationName,
			Version:       version.FromBuild().Version,
			Configuration: appConfig,
		},
	}
}

// VulnerabilityCount returns the number of (merged) vulnerabilities across all packages.
func (d Document) VulnerabilityCount() int {
	count := 0
	for _, p := range d.Packages {
		count += len(p.Vulnerabilities)
	}
	return count
}

// DefectCount returns the number of defects across all packages.
func (d Document) DefectCount() int {
	count := 0
	for _, p := range d.Packages {
		count += len(p.Defects)
	}
	return count
}

package run

import (
	"fmt"
	"time"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/pkg"
)

// Run is the summary of a single execution of the advisor: when it ran, where, with which configuration, and the
// results of every advisor for every package. A Run is immutable: its results are copied on construction and only
// handed out as copies, so a Run may be shared freely between goroutines.
type Run struct {
	startTime   time.Time
	endTime     time.Time
	environment Environment
	config      Configuration
	results     map[pkg.Identifier][]advisor.Result
}

// Empty is a run without any results.
var Empty = New(time.Unix(0, 0).UTC(), time.Unix(0, 0).UTC(), Environment{}, Configuration{}, nil)

// New creates a run from the given values. The results are deep-copied; later changes to the argument do not
// affect the run. Packages with no results are kept (they were advised, but nothing was found).
func New(startTime, endTime time.Time, env Environment, cfg Configuration, results map[pkg.Identifier][]advisor.Result) Run {
	copied := make(map[pkg.Identifier][]advisor.Result, len(results))
	for id, rs := range results {
		copied[id] = cloneResults(rs)
	}

	return Run{
		startTime:   startTime,
		endTime:     endTime,
		environment: env.clone(),
		config:      cfg.clone(),
		results:     copied,
	}
}

func cloneResults(rs []advisor.Result) []advisor.Result {
	out := make([]advisor.Result, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}

func (r Run) StartTime() time.Time {
	return r.startTime
}

func (r Run) EndTime() time.Time {
	return r.endTime
}

// Duration is the wall time the advisor run took.
func (r Run) Duration() time.Duration {
	return r.endTime.Sub(r.startTime)
}

func (r Run) Environment() Environment {
	return r.environment.clone()
}

func (r Run) Config() Configuration {
	return r.config.clone()
}

// Identifiers returns the identifiers of all packages with results, in sorted order.
func (r Run) Identifiers() []pkg.Identifier {
	ids := make([]pkg.Identifier, 0, len(r.results))
	for id := range r.results {
		ids = append(ids, id)
	}
	pkg.SortIdentifiers(ids)
	return ids
}

// Results returns a copy of the complete results mapping.
func (r Run) Results() map[pkg.Identifier][]advisor.Result {
	out := make(map[pkg.Identifier][]advisor.Result, len(r.results))
	for id, rs := range r.results {
		out[id] = cloneResults(rs)
	}
	return out
}

// ResultsFor returns a copy of the results for the given package; it is empty if the package is unknown.
func (r Run) ResultsFor(id pkg.Identifier) []advisor.Result {
	return cloneResults(r.results[id])
}

// Len returns the number of packages in the run.
func (r Run) Len() int {
	return len(r.results)
}

// WithResults returns a run with the same metadata as r but with the given results.
func (r Run) WithResults(results map[pkg.Identifier][]advisor.Result) Run {
	return New(r.startTime, r.endTime, r.environment, r.config, results)
}

func (r Run) String() string {
	return fmt.Sprintf("Run(start=%s end=%s packages=%d)", r.startTime.Format(time.RFC3339), r.endTime.Format(time.RFC3339), len(r.results))
}

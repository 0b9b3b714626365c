package advisor

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"

	"github.com/advise-tools/advise/advise/defect"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/vulnerability"
)

// Details identifies the advisor that produced a result and what kinds of findings it can produce.
type Details struct {
	Name         string       `json:"name" yaml:"name"`
	Capabilities []Capability `json:"capabilities" yaml:"capabilities"`
}

// Has reports whether the advisor declares the given capability.
func (d Details) Has(c Capability) bool {
	caps := strset.New()
	for _, declared := range d.Capabilities {
		caps.Add(string(declared))
	}
	return caps.Has(string(c))
}

// Summary holds the timing of an advisor execution and the issues it encountered.
type Summary struct {
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Issues    []issue.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Result is the output of one advisor run against one package.
type Result struct {
	Advisor         Details                       `json:"advisor" yaml:"advisor"`
	Summary         Summary                       `json:"summary" yaml:"summary"`
	Defects         []defect.Defect               `json:"defects,omitempty" yaml:"defects,omitempty"`
	Vulnerabilities []vulnerability.Vulnerability `json:"vulnerabilities,omitempty" yaml:"vulnerabilities,omitempty"`
}

func (r Result) String() string {
	return fmt.Sprintf("Result(advisor=%s vulnerabilities=%d defects=%d issues=%d)",
		r.Advisor.Name, len(r.Vulnerabilities), len(r.Defects), len(r.Summary.Issues))
}

// Clone returns a deep copy of the result.
func (r Result) Clone() Result {
	c := r
	if r.Advisor.Capabilities != nil {
		c.Advisor.Capabilities = make([]Capability, len(r.Advisor.Capabilities))
		copy(c.Advisor.Capabilities, r.Advisor.Capabilities)
	}
	if r.Summary.Issues != nil {
		c.Summary.Issues = make([]issue.Issue, len(r.Summary.Issues))
		copy(c.Summary.Issues, r.Summary.Issues)
	}
	if r.Defects != nil {
		c.Defects = make([]defect.Defect, len(r.Defects))
		for i, d := range r.Defects {
			c.Defects[i] = d.Clone()
		}
	}
	if r.Vulnerabilities != nil {
		c.Vulnerabilities = make([]vulnerability.Vulnerability, len(r.Vulnerabilities))
		for i, v := range r.Vulnerabilities {
			c.Vulnerabilities[i] = v.Clone()
		}
	}
	return c
}

// Validate checks the result for values that cannot be interpreted, reporting all problems at once.
func (r Result) Validate() error {
	var errs error
	if r.Advisor.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("advisor name is missing"))
	}
	for _, c := range r.Advisor.Capabilities {
		if !c.IsKnown() {
			errs = multierror.Append(errs, fmt.Errorf("advisor %q declares unknown capability %q", r.Advisor.Name, c))
		}
	}
	for idx, v := range r.Vulnerabilities {
		if v.ID == "" {
			errs = multierror.Append(errs, fmt.Errorf("advisor %q: vulnerability #%d has no ID", r.Advisor.Name, idx))
		}
	}
	return errs
}

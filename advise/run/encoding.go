package run

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/pkg"
)

// document is the serialized shape of a run. Results are keyed by the string form of the package identifier;
// both encoders emit map keys in sorted order.
type document struct {
	StartTime   time.Time                   `json:"start_time" yaml:"start_time"`
	EndTime     time.Time                   `json:"end_time" yaml:"end_time"`
	Environment Environment                 `json:"environment" yaml:"environment"`
	Config      Configuration               `json:"config" yaml:"config"`
	Results     map[string][]advisor.Result `json:"results" yaml:"results"`
}

func (r Run) toDocument() document {
	results := make(map[string][]advisor.Result, len(r.results))
	for id, rs := range r.results {
		results[id.String()] = rs
	}
	return document{
		StartTime:   r.startTime,
		EndTime:     r.endTime,
		Environment: r.environment,
		Config:      r.config,
		Results:     results,
	}
}

func fromDocument(doc document) (Run, error) {
	var errs error
	results := make(map[pkg.Identifier][]advisor.Result, len(doc.Results))
	for key, rs := range doc.Results {
		id, err := pkg.ParseIdentifier(key)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("results key %q: %w", key, err))
			continue
		}
		if _, exists := results[id]; exists {
			errs = multierror.Append(errs, fmt.Errorf("results key %q: duplicate package %s", key, id))
			continue
		}
		for idx, result := range rs {
			if err := result.Validate(); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("package %s: %w", id, err))
			}
			defaultIssueSeverities(rs[idx].Summary.Issues)
		}
		results[id] = rs
	}

	if errs != nil {
		return Run{}, errs
	}
	return New(doc.StartTime, doc.EndTime, doc.Environment, doc.Config, results), nil
}

// defaultIssueSeverities applies the default severity (ERROR) to issues that were encoded without one.
func defaultIssueSeverities(issues []issue.Issue) {
	for i := range issues {
		if issues[i].Severity == issue.UnknownSeverity {
			issues[i].Severity = issue.ErrorSeverity
		}
	}
}

func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toDocument())
}

func (r *Run) UnmarshalJSON(b []byte) error {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	decoded, err := fromDocument(doc)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

func (r Run) MarshalYAML() (interface{}, error) {
	return r.toDocument(), nil
}

func (r *Run) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var doc document
	if err := unmarshal(&doc); err != nil {
		return err
	}
	decoded, err := fromDocument(doc)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

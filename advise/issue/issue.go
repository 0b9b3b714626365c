package issue

import (
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure/v2"
)

// Issue is a problem an advisor ran into (or reports) while processing a package.
type Issue struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Source    string    `json:"source" yaml:"source"`
	Message   string    `json:"message" yaml:"message"`
	Severity  Severity  `json:"severity" yaml:"severity"`
}

// New creates an issue with the current time.
func New(source, message string, severity Severity) Issue {
	return Issue{
		Timestamp: time.Now().UTC(),
		Source:    source,
		Message:   message,
		Severity:  severity,
	}
}

func (i Issue) String() string {
	return fmt.Sprintf("Issue(severity=%s source=%q message=%q)", i.Severity, i.Source, i.Message)
}

// Fingerprint is the structural identity of an issue: two issues with equal fingerprints are the same issue.
func (i Issue) Fingerprint() Fingerprint {
	return Fingerprint{
		Timestamp: i.Timestamp.UTC().Format(time.RFC3339Nano),
		Source:    i.Source,
		Message:   i.Message,
		Severity:  i.Severity.String(),
	}
}

// Fingerprint fields are exported so that hashstructure includes them in ID.
type Fingerprint struct {
	Timestamp string
	Source    string
	Message   string
	Severity  string
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("Fingerprint(source=%q message=%q severity=%s time=%s)", f.Source, f.Message, f.Severity, f.Timestamp)
}

// ID returns a stable hash of the fingerprint suitable for referencing the issue in reports.
func (f Fingerprint) ID() string {
	h, err := hashstructure.Hash(&f, hashstructure.FormatV2, &hashstructure.HashOptions{
		ZeroNil:      true,
		SlicesAsSets: true,
	})
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%x", h)
}

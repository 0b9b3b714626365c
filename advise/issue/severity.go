package issue

import (
	"fmt"
	"strings"
)

// Severity is the ordered level attached to an issue: HINT < WARNING < ERROR.
type Severity int

const (
	UnknownSeverity Severity = iota
	HintSeverity
	WarningSeverity
	ErrorSeverity
)

var severityStr = []string{
	"UNKNOWN",
	"HINT",
	"WARNING",
	"ERROR",
}

// AllSeverities lists the known severities in ascending order.
var AllSeverities = []Severity{
	HintSeverity,
	WarningSeverity,
	ErrorSeverity,
}

// ParseSeverity returns the severity named by the given (case-insensitive) string.
func ParseSeverity(s string) (Severity, error) {
	clean := strings.ToUpper(strings.TrimSpace(s))
	for _, sev := range AllSeverities {
		if sev.String() == clean {
			return sev, nil
		}
	}
	return UnknownSeverity, fmt.Errorf("unknown issue severity %q (options: %v)", s, AllSeverities)
}

func (s Severity) String() string {
	if int(s) < 0 || int(s) >= len(severityStr) {
		return severityStr[UnknownSeverity]
	}
	return severityStr[s]
}

// AtLeast reports whether this severity is equal to or above the given minimum.
func (s Severity) AtLeast(minimum Severity) bool {
	return s >= minimum
}

// MarshalText renders the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name. An empty value means ERROR.
func (s *Severity) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*s = ErrorSeverity
		return nil
	}
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}

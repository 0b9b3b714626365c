package advisor

import (
	"fmt"
	"strings"
)

// Capability is a category of finding an advisor is able to produce.
type Capability string

const (
	DefectsCapability         Capability = "DEFECTS"
	VulnerabilitiesCapability Capability = "VULNERABILITIES"
)

// AllCapabilities lists the known capabilities.
var AllCapabilities = []Capability{
	DefectsCapability,
	VulnerabilitiesCapability,
}

// ParseCapability returns the capability named by the given (case-insensitive) string.
func ParseCapability(s string) (Capability, error) {
	clean := Capability(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range AllCapabilities {
		if c == clean {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown advisor capability %q (options: %v)", s, AllCapabilities)
}

func (c Capability) String() string {
	return string(c)
}

// IsKnown reports whether the capability is one of AllCapabilities.
func (c Capability) IsKnown() bool {
	_, err := ParseCapability(string(c))
	return err == nil
}

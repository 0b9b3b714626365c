package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/issue"
)

// failOn describes which results make the application exit with a failure.
type failOn struct {
	Severity        string `yaml:"severity" json:"severity" mapstructure:"severity"`
	Capability      string `yaml:"capability" json:"capability" mapstructure:"capability"`
	Vulnerabilities bool   `yaml:"vulnerabilities" json:"vulnerabilities" mapstructure:"vulnerabilities"`
	Defects         bool   `yaml:"defects" json:"defects" mapstructure:"defects"`

	SeverityOpt   *issue.Severity     `yaml:"-" json:"-"`
	CapabilityOpt *advisor.Capability `yaml:"-" json:"-"`
}

func (cfg failOn) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("fail-on.severity", "")
	v.SetDefault("fail-on.capability", "")
	v.SetDefault("fail-on.vulnerabilities", false)
	v.SetDefault("fail-on.defects", false)
}

func (cfg *failOn) parseConfigValues() error {
	if cfg.Severity != "" {
		severity, err := issue.ParseSeverity(cfg.Severity)
		if err != nil {
			return fmt.Errorf("bad --fail-on severity value '%s': %w", cfg.Severity, err)
		}
		cfg.SeverityOpt = &severity
	}

	if cfg.Capability != "" {
		if cfg.SeverityOpt == nil {
			return fmt.Errorf("--fail-on-capability requires --fail-on to be set")
		}
		capability, err := advisor.ParseCapability(cfg.Capability)
		if err != nil {
			return fmt.Errorf("bad --fail-on-capability value '%s': %w", cfg.Capability, err)
		}
		cfg.CapabilityOpt = &capability
	}
	return nil
}

// Filter returns the filter selecting results that should fail the application, or nil when no failure condition
// is configured.
func (cfg failOn) Filter() filter.Filter {
	var conditions filter.Any
	if cfg.SeverityOpt != nil {
		conditions = append(conditions, filter.ResultsWithIssues(*cfg.SeverityOpt, cfg.CapabilityOpt))
	}
	if cfg.Vulnerabilities {
		conditions = append(conditions, filter.ResultsWithVulnerabilities)
	}
	if cfg.Defects {
		conditions = append(conditions, filter.ResultsWithDefects)
	}

	switch len(conditions) {
	case 0:
		return nil
	case 1:
		return conditions[0]
	default:
		return conditions
	}
}

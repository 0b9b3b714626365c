package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// development holds options only useful while working on the application itself.
type development struct {
	ProfileCPU bool   `yaml:"profile-cpu" json:"profile-cpu" mapstructure:"profile-cpu"`
	ProfileMem bool   `yaml:"profile-mem" json:"profile-mem" mapstructure:"profile-mem"`
	ProfileDir string `yaml:"profile-dir" json:"profile-dir" mapstructure:"profile-dir"` // where profiles are written, defaults to the working directory
}

func (cfg development) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("dev.profile-cpu", false)
	v.SetDefault("dev.profile-mem", false)
	v.SetDefault("dev.profile-dir", ".")
}

func (cfg *development) parseConfigValues() error {
	if cfg.ProfileCPU && cfg.ProfileMem {
		return fmt.Errorf("only one of dev.profile-cpu and dev.profile-mem may be enabled at a time")
	}
	return nil
}

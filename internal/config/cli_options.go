package config

// CliOnlyOptions are options that can only be given on the command line (not in the application config file).
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}

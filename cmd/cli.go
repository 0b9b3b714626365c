package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/presenter"
	"github.com/advise-tools/advise/internal/config"
)

var persistentOpts = config.CliOnlyOptions{}

func init() {
	setGlobalCliOptions()
	setRootFlags(rootCmd.Flags())
}

func setGlobalCliOptions() {
	// setup global CLI options (available on all CLI commands)
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(
		flag, "q", false,
		"suppress all logging output",
	)
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")
}

func setRootFlags(flags *pflag.FlagSet) {
	flags.StringArrayP(
		"output", "o", nil,
		fmt.Sprintf("report output formatter, formats=%v, may be given as FORMAT=FILE and repeated", presenter.OptionNames()),
	)

	flags.StringP(
		"file", "", "",
		"file to write the report output to (default is STDOUT)",
	)

	flags.StringP(
		"template", "t", "",
		"specify the path to a Go template file (requires 'template' output to be selected)")

	flags.StringP(
		"filter", "", "",
		"only report results passing the filter, e.g. 'vulnerabilities|issues:warning' or '!defects'",
	)

	flags.StringArrayP(
		"package", "", nil,
		"only report packages whose identifier (TYPE:NAMESPACE:NAME:VERSION) matches the glob (may be repeated)",
	)

	flags.BoolP(
		"show-issues", "", false,
		"list the issues advisors encountered (table output only)",
	)

	flags.StringP(
		"fail-on", "f", "",
		fmt.Sprintf("set the return code to 1 if an advisor reported an issue at or above the given severity, options=%v",
			strings.ToLower(fmt.Sprint(issue.AllSeverities))),
	)

	flags.StringP(
		"fail-on-capability", "", "",
		fmt.Sprintf("only consider issues from advisors with the given capability for --fail-on, options=%v",
			strings.ToLower(fmt.Sprint(advisor.AllCapabilities))),
	)

	flags.BoolP(
		"fail-on-vulnerabilities", "", false,
		"set the return code to 1 if any vulnerability was reported",
	)

	flags.BoolP(
		"fail-on-defects", "", false,
		"set the return code to 1 if any defect was reported",
	)

	flags.BoolP(
		"profile-cpu", "", false,
		"write a CPU profile of the run",
	)
	flags.BoolP(
		"profile-mem", "", false,
		"write a memory profile of the run",
	)
	_ = flags.MarkHidden("profile-cpu")
	_ = flags.MarkHidden("profile-mem")
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"output":                  "output",
		"file":                    "file",
		"output-template-file":    "template",
		"filter":                  "filter",
		"packages":                "package",
		"show-issues":             "show-issues",
		"fail-on.severity":        "fail-on",
		"fail-on.capability":      "fail-on-capability",
		"fail-on.vulnerabilities": "fail-on-vulnerabilities",
		"fail-on.defects":         "fail-on-defects",
		"dev.profile-cpu":         "profile-cpu",
		"dev.profile-mem":         "profile-mem",
	}

	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

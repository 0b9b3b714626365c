package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v2"
	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/advise-tools/advise/advise"
	"github.com/advise-tools/advise/advise/adviseerr"
	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/pkg"
	"github.com/advise-tools/advise/advise/presenter/models"
	"github.com/advise-tools/advise/advise/run"
	"github.com/advise-tools/advise/internal"
	"github.com/advise-tools/advise/internal/format"
	"github.com/advise-tools/advise/internal/log"
	"github.com/advise-tools/advise/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [RUN-FILE]", internal.ApplicationName),
	Short: "Report on the findings of an advisor run",
	Long: format.Tprintf(`Reports the vulnerabilities, defects and issues that advisors found for a set of packages.
Supports the following inputs:
    {{.appName}} path/to/run.json      read a stored advisor run (JSON or YAML)
    cat run.yaml | {{.appName}}        read the advisor run from STDIN

Examples:
    {{.appName}} run.json --filter 'vulnerabilities|issues:warning'
    {{.appName}} run.json --package 'maven:org.apache.*:*:*' -o json
    {{.appName}} run.json --fail-on error --fail-on-capability vulnerabilities
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          validateRootArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDefaultCmd,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveDefault
	},
}

func validateRootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !isPipedInput() {
		// in the case that no arguments are given and there is no piped input we want to show the help text and return with a non-0 return code.
		if err := cmd.Help(); err != nil {
			return fmt.Errorf("unable to display help: %w", err)
		}
		return fmt.Errorf("an advisor run file argument is required")
	}

	return cobra.MaximumNArgs(1)(cmd, args)
}

func runDefaultCmd(_ *cobra.Command, args []string) error {
	if appConfig.Dev.ProfileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(appConfig.Dev.ProfileDir)).Stop()
	} else if appConfig.Dev.ProfileMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(appConfig.Dev.ProfileDir)).Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	interrupts, stopSignals := setupSignals()
	defer stopSignals()
	go func() {
		select {
		case <-interrupts:
			log.Warn("interrupted, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	if appConfig.CheckForAppUpdate {
		checkForApplicationUpdate(ctx)
	}

	r, err := loadRun(args)
	if err != nil {
		return err
	}

	selected, err := selectPackages(r, appConfig.Packages)
	if err != nil {
		return err
	}

	writer, err := format.MakeReportWriter(appConfig.Output, appConfig.File, appConfig.PresentationConfig())
	if err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil {
			log.Warnf("unable to write report: %+v", err)
		}
	}()

	if err := writer.Write(models.PresenterConfig{
		Run:       selected,
		Filter:    appConfig.FilterOpt,
		AppConfig: appConfig,
	}); err != nil {
		return err
	}

	if hitFailureThreshold(selected, appConfig.FailOn.Filter()) {
		return adviseerr.ErrAboveSeverityThreshold
	}
	return nil
}

func loadRun(args []string) (run.Run, error) {
	if len(args) == 0 {
		log.Debug("reading advisor run from STDIN")
		return advise.ReadRun(os.Stdin)
	}
	return advise.LoadRun(afero.NewOsFs(), args[0])
}

// selectPackages keeps only the packages whose identifier matches at least one of the given glob patterns. No
// patterns selects every package.
func selectPackages(r run.Run, patterns []string) (run.Run, error) {
	if len(patterns) == 0 {
		return r, nil
	}

	selected := make(map[pkg.Identifier][]advisor.Result)
	for _, id := range r.Identifiers() {
		for _, pattern := range patterns {
			matches, err := doublestar.Match(pattern, id.String())
			if err != nil {
				return run.Run{}, fmt.Errorf("bad package pattern %q: %w", pattern, err)
			}
			if matches {
				selected[id] = r.ResultsFor(id)
				break
			}
		}
	}

	log.Debugf("selected %d of %d packages with patterns=%+v", len(selected), r.Len(), patterns)
	return r.WithResults(selected), nil
}

// hitFailureThreshold indicates if any result of the run passes the configured failure filter.
func hitFailureThreshold(r run.Run, f filter.Filter) bool {
	if f == nil {
		return false
	}
	if r.Any(f) {
		log.Infof("results matched the failure criteria: %s", f)
		return true
	}
	return false
}

func checkForApplicationUpdate(ctx context.Context) {
	log.Debugf("checking if new version of %s is available", internal.ApplicationName)
	isAvailable, newVersion, err := version.IsUpdateAvailable(ctx)
	if err != nil {
		// this should never stop the application
		if !errors.Is(err, context.Canceled) {
			log.Errorf(err.Error())
		}
		return
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s (current version is %s)", internal.ApplicationName, newVersion, version.FromBuild().Version)
		_ = stderrPrintLnf("New version of %s is available: %s", internal.ApplicationName, newVersion)
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}

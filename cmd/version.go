package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/advise-tools/advise/internal"
	"github.com/advise-tools/advise/internal/version"
)

var outputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printVersion(cmd.OutOrStdout(), outputFormat)
	},
}

func init() {
	versionCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "format to show version information (available=[text, json])")

	rootCmd.AddCommand(versionCmd)
}

func printVersion(out io.Writer, format string) error {
	versionInfo := version.FromBuild()
	switch format {
	case "text":
		fmt.Fprintln(out, "Application:   ", internal.ApplicationName)
		fmt.Fprintln(out, "Version:       ", versionInfo.Version)
		fmt.Fprintln(out, "BuildDate:     ", versionInfo.BuildDate)
		fmt.Fprintln(out, "GitCommit:     ", versionInfo.GitCommit)
		fmt.Fprintln(out, "GitDescription:", versionInfo.GitDescription)
		fmt.Fprintln(out, "Platform:      ", versionInfo.Platform)
		fmt.Fprintln(out, "GoVersion:     ", versionInfo.GoVersion)
		fmt.Fprintln(out, "Compiler:      ", versionInfo.Compiler)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			version.Version
			Application string `json:"application"`
		}{
			Version:     versionInfo,
			Application: internal.ApplicationName,
		})
		if err != nil {
			return fmt.Errorf("failed to show version information: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}


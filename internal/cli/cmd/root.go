// Package cmd provides Cobra CLI commands for colorpref.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/colorpref/internal/cli"
	"github.com/bnema/colorpref/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "colorpref",
		Short: "Light, dark or follow the system",
		Long: `colorpref keeps a single light/dark theme preference.

The preference is one of three options:
  - system  follow the OS color scheme
  - light   always light
  - dark    always dark

The option is persisted and the effective theme (light or dark) is
recomputed whenever the option or the OS color scheme changes.

Without a display environment (e.g. over SSH or in CI) nothing is read
from or written to storage; set display.mode = "always" to override.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		version := buildInfo.Version
		if version == "" {
			version = "dev"
		}
		fmt.Fprintf(out, "colorpref %s\n", version)
		if buildInfo.Commit != "" {
			fmt.Fprintf(out, "  commit:  %s\n", buildInfo.Commit)
		}
		if buildInfo.BuildDate != "" {
			fmt.Fprintf(out, "  built:   %s\n", buildInfo.BuildDate)
		}
		if buildInfo.GoVersion != "" {
			fmt.Fprintf(out, "  go:      %s\n", buildInfo.GoVersion)
		}
		fmt.Fprintf(out, "  source:  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

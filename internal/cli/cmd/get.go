package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the theme option and the effective theme",
	Long: `Print the stored theme option and the effective theme it resolves to.

When the option is system, the OS detector that decided the effective
theme is shown in parentheses.

Examples:
  colorpref get
  colorpref get --json`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "print as JSON")
}

func runGet(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	stack, err := app.Stack()
	if err != nil {
		return err
	}

	snap := stack.Preference.Snapshot()
	out := cmd.OutOrStdout()
	if getJSON {
		return writeJSON(out, snap)
	}

	fmt.Fprintln(out, app.Theme.StatusLine(snap.Option, snap.Effective, snap.Source))
	if !snap.Attached {
		fmt.Fprintln(out, app.Theme.Subtle.Render("no display environment: showing defaults"))
	}
	return nil
}

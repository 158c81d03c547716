package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/colorpref/internal/application/usecase"
	"github.com/bnema/colorpref/internal/cli"
	"github.com/bnema/colorpref/internal/cli/styles"
	"github.com/bnema/colorpref/internal/domain/entity"
)

var setCmd = &cobra.Command{
	Use:   "set <system|light|dark>",
	Short: "Choose the theme option",
	Long: `Persist a new theme option and apply it.

  system  follow the OS color scheme
  light   always light
  dark    always dark

Examples:
  colorpref set dark
  colorpref set system`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: themeOptionNames(),
	RunE:      runSet,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the opposite of the effective theme",
	Long: `Set the option to light when the effective theme is dark, and to dark
otherwise. A system option is replaced by an explicit one.`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(toggleCmd)
}

func themeOptionNames() []string {
	opts := entity.ThemeOptions()
	names := make([]string, 0, len(opts))
	for _, opt := range opts {
		names = append(names, opt.String())
	}
	return names
}

func runSet(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	return applyOption(cmd.OutOrStdout(), app, args[0])
}

func runToggle(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	stack, err := app.Stack()
	if err != nil {
		return err
	}

	next := entity.ThemeDark
	if stack.Preference.Get().IsDark() {
		next = entity.ThemeLight
	}
	return applyOption(cmd.OutOrStdout(), app, next.String())
}

func applyOption(w io.Writer, app *cli.App, raw string) error {
	uc, err := app.ChangeThemeUseCase()
	if err != nil {
		return err
	}

	result, err := uc.Execute(app.Ctx(), usecase.ChangeThemeInput{Option: raw})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, app.Theme.StatusLine(result.Current, result.Effective, ""))
	if !result.Persisted {
		fmt.Fprintf(w, "%s %s\n",
			app.Theme.WarningStyle.Render(styles.IconWarning),
			app.Theme.WarningStyle.Render(`no display environment: nothing was saved (set display.mode = "always" to force)`))
	}
	return nil
}

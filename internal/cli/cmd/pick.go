package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/colorpref/internal/application/usecase"
	"github.com/bnema/colorpref/internal/cli/model"
	"github.com/bnema/colorpref/internal/domain/entity"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose the theme option interactively",
	Long: `Open an interactive picker for the theme option.

Use s, l or d to apply an option right away, or move with the arrow keys
and press enter to apply and exit. The header follows the effective theme
live, including OS changes while the option is system.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	stack, err := app.Stack()
	if err != nil {
		return err
	}
	uc, err := app.ChangeThemeUseCase()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	pref := stack.Preference
	apply := func(opt entity.ThemeOption) error {
		_, execErr := uc.Execute(ctx, usecase.ChangeThemeInput{Option: opt.String()})
		return execErr
	}

	picker := model.NewPickerModel(app.Theme, pref.Option(), pref.Get(), apply)
	program := tea.NewProgram(picker, tea.WithContext(ctx))

	// The first delivery is the value the picker was built with; later ones
	// are forwarded while the program runs.
	first := true
	unsubscribe := pref.Subscribe(func(e entity.Effective) {
		if first {
			first = false
			return
		}
		program.Send(model.EffectiveChangedMsg{Effective: e})
	}, nil)
	defer unsubscribe()

	stack.StartWatching(ctx)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(model.PickerModel)
	if !ok {
		return nil
	}
	if result.Err() != nil {
		return result.Err()
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.StatusLine(pref.Option(), pref.Get(), ""))
	return nil
}

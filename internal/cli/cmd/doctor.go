package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/colorpref/internal/application/usecase"
	"github.com/bnema/colorpref/internal/cli/styles"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose display, storage and OS detection",
	Long: `Doctor explains how the effective theme is computed on this machine:

- whether a display environment was found, and why
- which storage backend holds the option, and what it contains
- what every OS color scheme detector answers, and which one wins

Nothing is written while diagnosing.

Examples:
  colorpref doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	stack, err := app.Stack()
	if err != nil {
		return err
	}
	uc, err := app.DiagnoseThemeUseCase()
	if err != nil {
		return err
	}

	diag, err := uc.Execute(app.Ctx(), usecase.DiagnoseThemeInput{})
	if err != nil {
		return err
	}

	report := styles.DoctorReport{
		OverallOK: diag.OK,
		Display: styles.DoctorDisplayReport{
			Available: diag.DisplayAvailable,
			Mode:      string(app.Config.Display.Mode),
			Reason:    diag.DisplayReason,
		},
		Storage: styles.DoctorStorageReport{
			Backend: string(app.Config.Storage.Backend),
			Path:    app.Config.Storage.Path,
			Stored:  diag.Stored,
		},
		Detectors: make([]styles.DoctorDetector, 0, len(diag.Detectors)),
		Source:    diag.Source,
		Option:    stack.Preference.Option().String(),
		Effective: stack.Preference.Get().String(),
		Warnings:  diag.Warnings,
	}
	if diag.StorageErr != nil {
		report.Storage.Error = diag.StorageErr.Error()
	}
	for _, d := range diag.Detectors {
		report.Detectors = append(report.Detectors, styles.DoctorDetector{
			Name:        d.Name,
			Priority:    d.Priority,
			Available:   d.Available,
			Detected:    d.Detected,
			PrefersDark: d.PrefersDark,
			Selected:    d.Name == diag.Source,
		})
	}

	renderer := styles.NewDoctorRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(report))

	if !diag.OK {
		return fmt.Errorf("theme preference is not fully operational")
	}
	return nil
}

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusYes = "Yes"
	statusNo  = "No"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Display   DoctorDisplayReport
	Storage   DoctorStorageReport
	Detectors []DoctorDetector
	Source    string
	Option    string
	Effective string
	Warnings  []string
}

type DoctorDisplayReport struct {
	Available bool
	Mode      string
	Reason    string
}

type DoctorStorageReport struct {
	Backend string
	Path    string
	Stored  string
	Error   string
}

type DoctorDetector struct {
	Name        string
	Priority    int
	Available   bool
	Detected    bool
	PrefersDark bool
	Selected    bool
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := []string{
		r.renderDisplay(report.Display),
		r.renderStorage(report.Storage),
		r.renderDetectors(report),
	}
	if len(report.Warnings) > 0 {
		sections = append(sections, r.renderWarnings(report.Warnings))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		r.renderHeader(report.OverallOK),
		"",
		r.renderSummary(report),
		"",
		strings.Join(sections, "\n\n"),
	)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderSummary(report DoctorReport) string {
	return fmt.Sprintf("%s %s %s %s %s",
		r.theme.Subtle.Render("option"),
		r.theme.Normal.Render(report.Option),
		r.theme.Subtle.Render(IconArrow),
		r.theme.Highlight.Render(report.Effective),
		r.theme.Subtle.Render("(os signal from "+report.Source+")"),
	)
}

func (r *DoctorRenderer) renderDisplay(d DoctorDisplayReport) string {
	icon, style, text := IconCheck, r.theme.SuccessStyle, statusYes
	if !d.Available {
		icon, style, text = IconWarning, r.theme.WarningStyle, statusNo
	}

	lines := []string{
		fmt.Sprintf("%s %s %s", style.Render(icon), r.theme.Subtle.Render("Available"), style.Render(text)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Mode"), r.theme.Normal.Render(d.Mode)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Reason"), r.theme.Normal.Render(d.Reason)),
	}
	return r.box(IconSystem, "Display", lines)
}

func (r *DoctorRenderer) renderStorage(s DoctorStorageReport) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Backend"), r.theme.Normal.Render(s.Backend)),
	}
	if s.Path != "" {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Path"), r.theme.Normal.Render(s.Path)))
	}
	switch {
	case s.Error != "":
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(s.Error)))
	case s.Stored == "":
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Stored"), r.theme.Subtle.Render("(empty)")))
	default:
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Stored"), r.theme.Normal.Render(s.Stored)))
	}
	return r.box(IconStorage, "Storage", lines)
}

func (r *DoctorRenderer) renderDetectors(report DoctorReport) string {
	lines := make([]string, 0, len(report.Detectors))
	for _, d := range report.Detectors {
		lines = append(lines, r.renderDetector(d))
	}
	if len(lines) == 0 {
		lines = append(lines, r.theme.Subtle.Render("no detectors enabled"))
	}
	return r.box(IconInfo, "OS color scheme", lines)
}

func (r *DoctorRenderer) renderDetector(d DoctorDetector) string {
	icon, style, status := IconCheck, r.theme.SuccessStyle, "light"
	switch {
	case !d.Available:
		icon, style, status = IconX, r.theme.Subtle, "unavailable"
	case !d.Detected:
		icon, style, status = IconWarning, r.theme.WarningStyle, "no answer"
	case d.PrefersDark:
		status = "dark"
	}

	name := r.theme.Normal.Render(d.Name)
	if d.Selected {
		name = r.theme.Highlight.Render(d.Name)
	}
	priority := r.theme.Subtle.Render(fmt.Sprintf("priority %d", d.Priority))
	badge := r.theme.BadgeMuted.Render(style.Render(status))

	return fmt.Sprintf("%s %s %s %s", style.Render(icon), name, badge, priority)
}

func (r *DoctorRenderer) renderWarnings(warnings []string) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(w)))
	}
	return r.theme.WarningStyle.Render("Warnings") + "\n" + strings.Join(lines, "\n")
}

func (r *DoctorRenderer) box(icon, title string, lines []string) string {
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

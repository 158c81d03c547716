// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/colorpref/internal/cli/styles"
	"github.com/bnema/colorpref/internal/domain/entity"
)

// ApplyFunc persists and applies the chosen option.
type ApplyFunc func(entity.ThemeOption) error

// EffectiveChangedMsg reports a new effective theme while the picker is open,
// for example after the OS switched to dark mode.
type EffectiveChangedMsg struct {
	Effective entity.Effective
}

type appliedMsg struct {
	option entity.ThemeOption
	quit   bool
	err    error
}

var optionDescriptions = map[entity.ThemeOption]string{
	entity.ThemeSystem: "follow the OS color scheme",
	entity.ThemeLight:  "always light",
	entity.ThemeDark:   "always dark",
}

// PickerModel lets the user choose system, light or dark.
type PickerModel struct {
	theme *styles.Theme
	keys  styles.PickerKeyMap
	help  help.Model
	apply ApplyFunc

	options   []entity.ThemeOption
	cursor    int
	current   entity.ThemeOption
	effective entity.Effective

	err      error
	quitting bool
}

// NewPickerModel creates a picker positioned on the current option.
func NewPickerModel(theme *styles.Theme, current entity.ThemeOption, effective entity.Effective, apply ApplyFunc) PickerModel {
	m := PickerModel{
		theme:     theme,
		keys:      styles.DefaultPickerKeyMap(),
		help:      styles.NewStyledHelp(theme),
		apply:     apply,
		options:   entity.ThemeOptions(),
		current:   current,
		effective: effective,
	}
	for i, opt := range m.options {
		if opt == current {
			m.cursor = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EffectiveChangedMsg:
		m.effective = msg.Effective
		return m, nil

	case appliedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.current = msg.option
		if msg.quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.System):
		return m.choose(entity.ThemeSystem, false)
	case key.Matches(msg, m.keys.Light):
		return m.choose(entity.ThemeLight, false)
	case key.Matches(msg, m.keys.Dark):
		return m.choose(entity.ThemeDark, false)
	case key.Matches(msg, m.keys.Select):
		return m.choose(m.options[m.cursor], true)
	}
	return m, nil
}

// choose moves the cursor to opt and applies it in a command.
func (m PickerModel) choose(opt entity.ThemeOption, quit bool) (tea.Model, tea.Cmd) {
	for i, o := range m.options {
		if o == opt {
			m.cursor = i
		}
	}
	apply := m.apply
	return m, func() tea.Msg {
		var err error
		if apply != nil {
			err = apply(opt)
		}
		return appliedMsg{option: opt, quit: quit, err: err}
	}
}

// Current returns the last successfully applied option.
func (m PickerModel) Current() entity.ThemeOption {
	return m.current
}

// Err returns the last apply error, if any.
func (m PickerModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	header := t.Title.Render("Theme") + " " +
		t.BadgeMuted.Render(styles.EffectiveIcon(m.effective)+" "+string(m.effective))

	rows := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		label := styles.OptionIcon(opt) + "  " + string(opt)
		if opt == m.current {
			label += " " + t.Subtle.Render("(current)")
		}
		desc := t.ListItemDesc.Render(optionDescriptions[opt])

		if i == m.cursor {
			rows = append(rows, t.ListItemSelected.Render(styles.IconCursor+" "+label)+"  "+desc)
			continue
		}
		rows = append(rows, t.ListItem.Render("  "+label)+"  "+desc)
	}

	parts := []string{header, "", lipgloss.JoinVertical(lipgloss.Left, rows...)}
	if m.err != nil {
		parts = append(parts, "", t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, "", m.help.View(m.keys))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Ensure interface compliance.
var _ tea.Model = PickerModel{}

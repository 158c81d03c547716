package model

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/colorpref/internal/cli/styles"
	"github.com/bnema/colorpref/internal/domain/entity"
)

func newTestPicker(current entity.ThemeOption, apply ApplyFunc) PickerModel {
	return NewPickerModel(styles.NewTheme(entity.EffectiveLight), current, entity.EffectiveLight, apply)
}

// run feeds msg to the model and executes any returned command once.
func run(t *testing.T, m PickerModel, msg tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PickerModel)
	require.True(t, ok)
	if cmd == nil {
		return pm, nil
	}
	out := cmd()
	if _, isApplied := out.(appliedMsg); isApplied {
		return run(t, pm, out)
	}
	return pm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_StartsOnCurrentOption(t *testing.T) {
	m := newTestPicker(entity.ThemeDark, nil)
	assert.Equal(t, 2, m.cursor)
	assert.Contains(t, m.View(), "(current)")
}

func TestPicker_EnterAppliesAndQuits(t *testing.T) {
	var applied []entity.ThemeOption
	m := newTestPicker(entity.ThemeSystem, func(o entity.ThemeOption) error {
		applied = append(applied, o)
		return nil
	})

	m, _ = run(t, m, keyMsg("down"))
	m, cmd := run(t, m, keyMsg("enter"))

	assert.Equal(t, []entity.ThemeOption{entity.ThemeLight}, applied)
	assert.Equal(t, entity.ThemeLight, m.Current())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestPicker_ShortcutAppliesWithoutQuitting(t *testing.T) {
	var applied []entity.ThemeOption
	m := newTestPicker(entity.ThemeSystem, func(o entity.ThemeOption) error {
		applied = append(applied, o)
		return nil
	})

	m, cmd := run(t, m, keyMsg("d"))

	assert.Nil(t, cmd)
	assert.Equal(t, []entity.ThemeOption{entity.ThemeDark}, applied)
	assert.Equal(t, entity.ThemeDark, m.Current())
	assert.Equal(t, 2, m.cursor)
	assert.NotEmpty(t, m.View())
}

func TestPicker_ApplyErrorIsShown(t *testing.T) {
	m := newTestPicker(entity.ThemeSystem, func(entity.ThemeOption) error {
		return errors.New("read-only state file")
	})

	m, _ = run(t, m, keyMsg("enter"))

	require.Error(t, m.Err())
	assert.Equal(t, entity.ThemeSystem, m.Current())
	assert.Contains(t, m.View(), "read-only state file")
}

func TestPicker_CursorBounds(t *testing.T) {
	m := newTestPicker(entity.ThemeSystem, nil)

	m, _ = run(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 5; i++ {
		m, _ = run(t, m, keyMsg("j"))
	}
	assert.Equal(t, 2, m.cursor)
}

func TestPicker_EffectiveChangedUpdatesHeader(t *testing.T) {
	m := newTestPicker(entity.ThemeSystem, nil)

	m, _ = run(t, m, EffectiveChangedMsg{Effective: entity.EffectiveDark})

	assert.Equal(t, entity.EffectiveDark, m.effective)
	assert.Contains(t, m.View(), "dark")
}

func TestPicker_QuitKeys(t *testing.T) {
	m := newTestPicker(entity.ThemeSystem, nil)
	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

func newStore() *state.Store {
	return state.New(state.SharedState{
		Language: "EN",
		Theme:    "light",
		Themes: map[string]style.Palette{
			"light": {style.KeyText: "#111111"},
			"dark":  {style.KeyText: "#eeeeee"},
		},
		Strings: state.Strings{
			"EN": {"title": "Theme kit", "language": "Language", "status": map[string]any{"current": "Current"}},
			"FR": {"title": "Kit de thèmes", "language": "Langue", "status": map[string]any{"current": "Actuel"}},
		},
	})
}

func TestNewModelDefaultsTogglesFromStore(t *testing.T) {
	t.Parallel()

	toggles := withDefaults(config.Toggles{}, newStore().State())

	assert.Equal(t, []string{"FR", "EN"}, toggles.Languages)
	assert.Equal(t, []string{"light", "dark"}, toggles.Themes)
	assert.Equal(t, defaultFontScales, toggles.FontScales)
}

func TestStartAfter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"c", "a", "b"}, startAfter([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a", "b", "c"}, startAfter([]string{"a", "b", "c"}, "c"))
	assert.Equal(t, []string{"a", "b"}, startAfter([]string{"a", "b"}, "z"))
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	t.Parallel()

	store := newStore()
	m := NewModel(store, config.Toggles{})
	require.Positive(t, store.Len())

	m.Close()
	assert.Zero(t, store.Len())

	m.Close()
	assert.Nil(t, m.Init()())
}

func TestPressPropagatesToEveryComponent(t *testing.T) {
	t.Parallel()

	store := newStore()
	m := NewModel(store, config.Toggles{})
	defer m.Close()

	assert.Contains(t, m.View(), "Theme kit")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	m = updated.(Model)

	assert.Equal(t, "FR", store.State().Language)
	assert.Equal(t, "FR", m.Toggled())

	msg := m.Init()()
	changed, ok := msg.(StateChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "FR", changed.State.Language)

	updated, cmd = m.Update(changed)
	require.NotNil(t, cmd)
	m = updated.(Model)
	assert.Equal(t, 1, m.Broadcasts())

	view := m.View()
	assert.Contains(t, view, "Kit de thèmes")
	assert.Contains(t, view, "Langue")
	assert.Contains(t, view, "Actuel: FR")
}

func TestFocusNavigationWraps(t *testing.T) {
	t.Parallel()

	m := NewModel(newStore(), config.Toggles{})
	defer m.Close()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, len(m.buttons)-1, m.Focused())
	assert.True(t, m.buttons[m.Focused()].IsFocused())
	assert.False(t, m.buttons[0].IsFocused())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, 0, m.Focused())
}

func TestThemeButtonSwitchesPalette(t *testing.T) {
	t.Parallel()

	store := newStore()
	m := NewModel(store, config.Toggles{Themes: []string{"dark"}})
	defer m.Close()

	for i := 0; i < 2; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, "dark", store.State().Theme)
	assert.Equal(t, "#eeeeee", store.State().Palette.Get(style.KeyText))
}

func TestQuitAndHelp(t *testing.T) {
	t.Parallel()

	m := NewModel(newStore(), config.Toggles{})
	defer m.Close()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = updated.(Model)
	assert.True(t, m.help.ShowAll)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 100, m.help.Width)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	m = updated.(Model)
	assert.Empty(t, m.View())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCoalescedChangesShowLatestState(t *testing.T) {
	t.Parallel()

	store := newStore()
	m := NewModel(store, config.Toggles{})
	defer m.Close()

	wait := m.Init()
	for i := 0; i < 2; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(Model)
	}
	require.Equal(t, "EN", store.State().Language)

	updated, _ := m.Update(wait())
	m = updated.(Model)

	assert.Equal(t, "EN", m.current.Language)
	assert.Contains(t, m.View(), "Current: EN")
}

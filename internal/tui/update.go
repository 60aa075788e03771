package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case StateChangedMsg:
		// The message only wakes the model; changes arriving while one is
		// pending are coalesced, so the store holds the latest state.
		m.current = m.store.State()
		m.broadcasts++
		return m, m.waitForChange()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Press):
		if value, ok := m.buttons[m.focus].Press(); ok {
			m.toggled = value
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	m.buttons[m.focus].SetFocused(false)
	m.focus = (m.focus + delta + len(m.buttons)) % len(m.buttons)
	m.buttons[m.focus].SetFocused(true)
}

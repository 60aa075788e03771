// Package tui runs the interactive demo: a row of buttons and headings
// mounted on one store, where a press on any toggle button re-renders
// every component.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/toggle"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// StateChangedMsg reports that the store broadcast at least once since the
// previous message. State is the broadcast that woke the model and may be
// older than the store's current state.
type StateChangedMsg struct {
	State state.SharedState
}

var defaultFontScales = []float64{1.25, 1.5, 1}

// Model is the Bubble Tea model of the demo.
type Model struct {
	store   *state.Store
	subID   state.SubscriptionID
	changes chan state.SharedState
	done    chan struct{}

	title    *components.Text
	greeting *components.Text
	status   *components.Text
	buttons  []*components.Button
	focus    int

	keys keyMap
	help help.Model

	current    state.SharedState
	broadcasts int
	toggled    any
	width      int
	quitting   bool
}

// NewModel mounts the demo components on store. Empty toggle lists fall
// back to the languages and themes known to the store.
func NewModel(store *state.Store, toggles config.Toggles) Model {
	m := Model{
		store:   store,
		changes: make(chan state.SharedState, 1),
		done:    make(chan struct{}),
		keys:    defaultKeys(),
		help:    help.New(),
		current: store.State(),
	}
	m.subID = store.Subscribe(m.notify)

	toggles = withDefaults(toggles, m.current)
	m.title = components.Heading(store, components.H1, "title")
	m.greeting = components.Heading(store, components.H3, "greeting")
	m.status = components.NewText(store, "status.current")
	m.buttons = []*components.Button{
		components.NewButton(store, "language").
			WithModifiers("bordered").
			WithToggles(toggle.Options{LangToggle: toggles.Languages}),
		components.NewButton(store, "size").
			WithModifiers("bordered").
			WithToggles(toggle.Options{FontScaleToggle: toggles.FontScales}),
		components.NewButton(store, "theme").
			WithModifiers("bordered").
			WithToggles(toggle.Options{ThemeToggle: toggles.Themes}),
		components.NewButton(store, "save").WithModifiers("success bordered"),
		components.NewButton(store, "delete").WithModifiers("error bordered"),
	}
	m.buttons[0].SetFocused(true)
	return m
}

// Init waits for the first broadcast.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Close releases the store subscriptions of the model and its components.
func (m Model) Close() {
	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}
	m.store.Unsubscribe(m.subID)
	m.title.Unmount()
	m.greeting.Unmount()
	m.status.Unmount()
	for _, b := range m.buttons {
		b.Unmount()
	}
}

// Focused returns the index of the focused button.
func (m Model) Focused() int {
	return m.focus
}

// Broadcasts returns how many StateChangedMsg the model has handled.
func (m Model) Broadcasts() int {
	return m.broadcasts
}

// Toggled returns the value reported by the last toggle press.
func (m Model) Toggled() any {
	return m.toggled
}

// notify runs inside the store's broadcast and must not block; a pending
// change is enough to wake the program.
func (m Model) notify(s state.SharedState) {
	select {
	case m.changes <- s:
	default:
	}
}

func (m Model) waitForChange() tea.Cmd {
	changes, done := m.changes, m.done
	return func() tea.Msg {
		select {
		case s := <-changes:
			return StateChangedMsg{State: s}
		case <-done:
			return nil
		}
	}
}

func withDefaults(t config.Toggles, current state.SharedState) config.Toggles {
	if len(t.Languages) == 0 {
		t.Languages = startAfter(current.Strings.Languages(), current.Language)
	}
	if len(t.Themes) == 0 {
		names := make([]string, 0, len(current.Themes))
		for name := range current.Themes {
			names = append(names, name)
		}
		slices.Sort(names)
		t.Themes = startAfter(names, current.Theme)
	}
	if len(t.FontScales) == 0 {
		t.FontScales = defaultFontScales
	}
	return t
}

// startAfter rotates list so that the entry following current comes
// first, making the first press visibly change something.
func startAfter(list []string, current string) []string {
	i := slices.Index(list, current)
	if i < 0 {
		return list
	}
	rotated := make([]string, 0, len(list))
	rotated = append(rotated, list[i+1:]...)
	return append(rotated, list[:i+1]...)
}

// Run starts the demo program and releases the components when it exits.
func Run(store *state.Store, toggles config.Toggles, opts ...tea.ProgramOption) error {
	m := NewModel(store, toggles)
	defer m.Close()

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

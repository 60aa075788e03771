package components

import "github.com/charmbracelet/lipgloss"

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// Mounted is a component holding store subscriptions.
type Mounted interface {
	Renderable
	Unmount()
}

// StyleFunc transforms the computed lipgloss style of a component. Appliers
// run after modifiers have been resolved, so they override them.
type StyleFunc func(lipgloss.Style) lipgloss.Style

func applyAll(base lipgloss.Style, appliers []StyleFunc) lipgloss.Style {
	for _, fn := range appliers {
		if fn != nil {
			base = fn(base)
		}
	}
	return base
}

// unmountAll releases every child that holds subscriptions.
func unmountAll(children []Renderable) {
	for _, child := range children {
		if m, ok := child.(Mounted); ok {
			m.Unmount()
		}
	}
}

// Alignment specifies how content is aligned on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

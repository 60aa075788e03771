package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	row := make([]components.Renderable, 0, len(m.buttons))
	for _, b := range m.buttons {
		row = append(row, b)
	}

	status := fmt.Sprintf("%s: %s · %s · ×%.2f",
		m.status.String(), m.current.Language, m.current.Theme, m.current.FontScale)
	if m.toggled != nil {
		status = fmt.Sprintf("%s · %v", status, m.toggled)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.title.View(),
		m.greeting.View(),
		sectionStyle.Render(components.HStack(row...).WithGap(1).View()),
		statusStyle.Render(status),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

package style

import "github.com/charmbracelet/lipgloss"

// Geometry in fragments is expressed in density-independent points. A
// terminal cell is roughly twice as tall as it is wide.
const (
	pointsPerColumn = 5
	pointsPerRow    = 10
)

// Columns converts points to terminal columns; any positive value yields at least one.
func Columns(points int) int {
	return toCells(points, pointsPerColumn)
}

// Rows converts points to terminal rows; any positive value yields at least one.
func Rows(points int) int {
	return toCells(points, pointsPerRow)
}

func toCells(points, per int) int {
	if points <= 0 {
		return 0
	}
	cells := points / per
	if cells < 1 {
		return 1
	}
	return cells
}

// Apply maps the fragment onto a lipgloss style. Unset fields leave base untouched.
func (f Fragment) Apply(base lipgloss.Style) lipgloss.Style {
	if f.BackgroundColor != nil && *f.BackgroundColor != "" {
		base = base.Background(lipgloss.Color(*f.BackgroundColor))
	}
	if f.Color != nil && *f.Color != "" {
		base = base.Foreground(lipgloss.Color(*f.Color))
	}
	if border, ok := f.border(); ok {
		base = base.Border(border)
		if f.BorderColor != nil && *f.BorderColor != "" {
			base = base.BorderForeground(lipgloss.Color(*f.BorderColor))
		}
	}
	if f.Width != nil {
		base = base.Width(Columns(*f.Width))
	}
	if f.Height != nil {
		base = base.Height(Rows(*f.Height))
	}
	if f.Padding != nil {
		base = base.Padding(Rows(*f.Padding), Columns(*f.Padding))
	}
	return base
}

func (f Fragment) border() (lipgloss.Border, bool) {
	if f.BorderWidth == nil || *f.BorderWidth <= 0 {
		return lipgloss.Border{}, false
	}
	switch {
	case f.BorderRadius != nil && *f.BorderRadius > 0:
		return lipgloss.RoundedBorder(), true
	case *f.BorderWidth > 1:
		return lipgloss.ThickBorder(), true
	default:
		return lipgloss.NormalBorder(), true
	}
}

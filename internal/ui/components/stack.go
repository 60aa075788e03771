package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction.
type Stack struct {
	children  []Renderable
	direction Direction
	gap       int
	align     Alignment
	appliers  []StyleFunc
}

// NewStack creates a vertical stack.
func NewStack(children ...Renderable) *Stack {
	return &Stack{children: children}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the children joined along the stack direction.
func (s *Stack) View() string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := child.View(); view != "" {
			views = append(views, view)
		}
	}

	base := applyAll(lipgloss.NewStyle(), s.appliers)
	if len(views) == 0 {
		return base.Render("")
	}
	if s.direction == DirectionHorizontal {
		return base.Render(s.joinHorizontal(views))
	}
	return base.Render(s.joinVertical(views))
}

func (s *Stack) joinVertical(views []string) string {
	// A block of n newlines is n+1 empty rows.
	spacer := ""
	if s.gap > 1 {
		spacer = strings.Repeat("\n", s.gap-1)
	}
	return lipgloss.JoinVertical(s.align.position(), s.withGaps(views, spacer)...)
}

func (s *Stack) joinHorizontal(views []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.withGaps(views, strings.Repeat(" ", s.gap))...)
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return result
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers appends style overrides for the stack container.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.appliers = append(s.appliers, appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}

// Unmount releases every mounted child.
func (s *Stack) Unmount() {
	unmountAll(s.children)
}

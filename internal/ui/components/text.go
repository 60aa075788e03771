package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/hooks"
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// Variant selects the base font size of a Text.
type Variant int

const (
	Body Variant = iota
	H1
	H2
	H3
	H4
	H5
	H6
)

var baseSizes = map[Variant]float64{
	Body: 14,
	H1:   32,
	H2:   28,
	H3:   24,
	H4:   20,
	H5:   16,
	H6:   12,
}

// boldFrom is the scaled font size from which text renders bold.
const boldFrom = 20

// Text renders translated content in the active palette.
type Text struct {
	i18n  *hooks.I18n
	theme *hooks.Theme
	owned bool

	content  any
	variant  Variant
	fragment style.Fragment
	appliers []StyleFunc
}

// NewText mounts a text component on store. Content that is a string is
// translated through the string tables; anything else renders as is.
func NewText(store *state.Store, content any) *Text {
	return &Text{
		i18n:    hooks.UseI18n(store),
		theme:   hooks.UseTheme(store),
		owned:   true,
		content: content,
	}
}

// newLabel builds a Text sharing the hooks of its parent.
func newLabel(i18n *hooks.I18n, theme *hooks.Theme, content any) *Text {
	return &Text{i18n: i18n, theme: theme, content: content}
}

// Heading mounts a text component with a heading variant.
func Heading(store *state.Store, variant Variant, content any) *Text {
	return NewText(store, content).WithVariant(variant)
}

// View renders the translated content.
func (t *Text) View() string {
	theme := t.theme.State()
	base := style.Fragment{Color: theme.Color.Ref(style.KeyText)}

	s := base.Merge(t.fragment).Apply(lipgloss.NewStyle())
	if t.FontSize() >= boldFrom {
		s = s.Bold(true)
	}
	return applyAll(s, t.appliers).Render(t.String())
}

// String returns the translated content without styling.
func (t *Text) String() string {
	switch v := t.i18n.GetString(t.content).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// FontSize returns the variant's base size multiplied by the font scale.
func (t *Text) FontSize() float64 {
	return baseSizes[t.variant] * t.theme.State().FontScale
}

// Variant returns the heading variant.
func (t *Text) Variant() Variant {
	return t.variant
}

// Content returns the untranslated content.
func (t *Text) Content() any {
	return t.content
}

// SetContent replaces the content.
func (t *Text) SetContent(content any) *Text {
	t.content = content
	return t
}

// WithVariant sets the heading variant.
func (t *Text) WithVariant(variant Variant) *Text {
	t.variant = variant
	return t
}

// WithFragment layers a style fragment over the default text colour.
func (t *Text) WithFragment(f style.Fragment) *Text {
	t.fragment = f
	return t
}

// WithAppliers appends style overrides.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.appliers = append(t.appliers, appliers...)
	return t
}

// Unmount releases the hooks. Labels owned by a Button leave that to it.
func (t *Text) Unmount() {
	if !t.owned {
		return
	}
	t.i18n.Unmount()
	t.theme.Unmount()
}

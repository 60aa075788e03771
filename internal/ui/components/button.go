package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/hooks"
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/toggle"
)

// Button is a pressable container. It mounts an i18n and a theme hook, so
// presses that toggle language, font scale or theme reach every other
// mounted component through the store.
type Button struct {
	i18n    *hooks.I18n
	theme   *hooks.Theme
	toggles *toggle.Controller

	title    string
	children []Renderable

	modifiers        string
	size             int
	width            *int
	height           *int
	padding          *int
	marginHorizontal int

	appliers []StyleFunc
	disabled bool
	focused  bool
}

// NewButton mounts a button on store. An empty title renders no label.
func NewButton(store *state.Store, title string) *Button {
	b := &Button{
		i18n:  hooks.UseI18n(store),
		theme: hooks.UseTheme(store),
		title: title,
	}
	b.toggles = toggle.NewController(toggle.Options{}, b.i18n, b.theme)
	return b
}

// Press activates the button: configured toggles advance and onPress runs.
// It returns the last toggled value. Disabled buttons ignore presses.
func (b *Button) Press() (any, bool) {
	if b.disabled {
		return nil, false
	}
	return b.toggles.Activate()
}

// View renders the button with the modifiers resolved against the current
// palette and provider modifiers.
func (b *Button) View() string {
	resolved := b.theme.Resolve(b.modifiers, b.size)

	explicit := style.Fragment{Width: b.width, Height: b.height, Padding: b.padding}
	container := explicit.Merge(resolved.Touchable).
		Apply(lipgloss.NewStyle().Align(lipgloss.Center))
	if b.marginHorizontal > 0 {
		container = container.
			MarginLeft(style.Columns(b.marginHorizontal)).
			MarginRight(style.Columns(b.marginHorizontal))
	}
	if b.disabled {
		container = container.Faint(true)
	}
	if b.focused {
		container = container.Underline(true).Bold(true)
	}
	container = applyAll(container, b.appliers)

	views := make([]string, 0, len(b.children)+1)
	if b.title != "" {
		views = append(views, b.Label(resolved.Text).View())
	}
	for _, child := range b.children {
		if child == nil {
			continue
		}
		if view := child.View(); view != "" {
			views = append(views, view)
		}
	}
	return container.Render(lipgloss.JoinVertical(lipgloss.Center, views...))
}

// Label returns the title as an H5 text styled with fragment. It shares the
// button's hooks.
func (b *Button) Label(fragment style.Fragment) *Text {
	return newLabel(b.i18n, b.theme, b.title).WithVariant(H5).WithFragment(fragment)
}

// Resolve returns the resolved touchable and text records for the current state.
func (b *Button) Resolve() style.Resolved {
	return b.theme.Resolve(b.modifiers, b.size)
}

// WithToggles configures the toggle lists and callbacks. Cursors restart
// at the first entry of each list.
func (b *Button) WithToggles(opts toggle.Options) *Button {
	b.toggles = toggle.NewController(opts, b.i18n, b.theme)
	return b
}

// OnPress sets the callback run on every press.
func (b *Button) OnPress(fn func()) *Button {
	opts := b.toggles.Options()
	opts.OnPress = fn
	return b.WithToggles(opts)
}

// WithModifiers sets the space separated modifier tokens.
func (b *Button) WithModifiers(modifiers string) *Button {
	b.modifiers = modifiers
	return b
}

// WithSize sets the size used by the "round" modifier.
func (b *Button) WithSize(size int) *Button {
	b.size = size
	return b
}

// WithWidth sets the width in points.
func (b *Button) WithWidth(width int) *Button {
	b.width = &width
	return b
}

// WithHeight sets the height in points.
func (b *Button) WithHeight(height int) *Button {
	b.height = &height
	return b
}

// WithPadding sets the padding in points.
func (b *Button) WithPadding(padding int) *Button {
	b.padding = &padding
	return b
}

// WithMarginHorizontal sets the left and right margin in points.
func (b *Button) WithMarginHorizontal(margin int) *Button {
	b.marginHorizontal = margin
	return b
}

// WithChildren appends content rendered below the title.
func (b *Button) WithChildren(children ...Renderable) *Button {
	b.children = append(b.children, children...)
	return b
}

// WithAppliers appends style overrides.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.appliers = append(b.appliers, appliers...)
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// SetFocused marks the button as the focused one.
func (b *Button) SetFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// Title returns the untranslated title.
func (b *Button) Title() string {
	return b.title
}

// Toggles reports whether the button has toggle lists.
func (b *Button) Toggles() bool {
	return b.toggles.Toggles()
}

// Toggled returns the most recently toggled value.
func (b *Button) Toggled() any {
	return b.toggles.Last()
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsFocused returns true if the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

// Unmount releases both hooks and the children's subscriptions.
func (b *Button) Unmount() {
	b.i18n.Unmount()
	b.theme.Unmount()
	unmountAll(b.children)
}

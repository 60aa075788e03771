package hooks

import (
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// ThemeState is the theme slice of the shared state.
type ThemeState struct {
	Name      string
	FontScale float64
	Color     style.Palette
}

// ThemeUpdate is a partial theme change; nil fields are kept.
type ThemeUpdate struct {
	Theme     *string
	FontScale *float64
}

// Theme is the theme hook.
type Theme struct {
	*binding
}

// UseTheme mounts a theme hook on store.
func UseTheme(store *state.Store, opts ...Option) *Theme {
	return &Theme{binding: mount(store, opts...)}
}

// State returns the hook's cached theme state.
func (h *Theme) State() ThemeState {
	local := h.snapshot()
	return ThemeState{Name: local.Theme, FontScale: local.FontScale, Color: local.Palette}
}

// Set merges u over the current theme slice and broadcasts it.
func (h *Theme) Set(u ThemeUpdate) {
	p := state.Patch{Theme: u.Theme, FontScale: u.FontScale}
	if p.IsEmpty() {
		return
	}
	h.dispatch(p)
}

// SetTheme switches the active theme by name.
func (h *Theme) SetTheme(name string) {
	h.Set(ThemeUpdate{Theme: &name})
}

// SetFontScale changes the font scale.
func (h *Theme) SetFontScale(scale float64) {
	h.Set(ThemeUpdate{FontScale: &scale})
}

// ProviderModifiers returns the custom modifiers for the cached palette.
func (h *Theme) ProviderModifiers() style.Modifiers {
	return h.snapshot().ProviderModifiers()
}

// Resolve resolves modifiers against the cached palette and provider modifiers.
func (h *Theme) Resolve(modifiers string, size int) style.Resolved {
	local := h.snapshot()
	return style.Resolve(modifiers, local.Palette, size, local.ProviderModifiers())
}

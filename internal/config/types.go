package config

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// Config is the provider document: the initial shared state plus the
// palettes, string tables and custom modifiers it can switch between.
type Config struct {
	Language  string                       `yaml:"language" toml:"language" validate:"required,language_code"`
	Theme     string                       `yaml:"theme" toml:"theme" validate:"required,min=1,max=64"`
	FontScale float64                      `yaml:"font_scale,omitempty" toml:"font_scale" validate:"omitempty,gt=0,lte=4"`
	MergeBase string                       `yaml:"merge_base,omitempty" toml:"merge_base" validate:"omitempty,oneof=authoritative local"`
	Themes    map[string]map[string]string `yaml:"themes,omitempty" toml:"themes" validate:"omitempty,dive,dive,color"`
	Strings   map[string]map[string]any    `yaml:"strings,omitempty" toml:"strings"`
	Modifiers map[string]ModifierSpec      `yaml:"modifiers,omitempty" toml:"modifiers" validate:"omitempty,dive"`
	Toggles   Toggles                      `yaml:"toggles,omitempty" toml:"toggles"`
}

// Toggles lists the values the demo's toggle buttons cycle through.
type Toggles struct {
	Languages  []string  `yaml:"languages,omitempty" toml:"languages" validate:"omitempty,dive,language_code"`
	FontScales []float64 `yaml:"font_scales,omitempty" toml:"font_scales" validate:"omitempty,dive,gt=0,lte=4"`
	Themes     []string  `yaml:"themes,omitempty" toml:"themes" validate:"omitempty,dive,min=1"`
}

// ModifierSpec declares a custom modifier. Colour fields take a literal
// colour or a "$key" reference into the active palette.
type ModifierSpec struct {
	BackgroundColor string `yaml:"background_color,omitempty" toml:"background_color" validate:"omitempty,color_ref"`
	Color           string `yaml:"color,omitempty" toml:"color" validate:"omitempty,color_ref"`
	BorderColor     string `yaml:"border_color,omitempty" toml:"border_color" validate:"omitempty,color_ref"`
	BorderWidth     *int   `yaml:"border_width,omitempty" toml:"border_width" validate:"omitempty,min=0"`
	BorderRadius    *int   `yaml:"border_radius,omitempty" toml:"border_radius" validate:"omitempty,min=0"`
	Width           *int   `yaml:"width,omitempty" toml:"width" validate:"omitempty,min=0"`
	Height          *int   `yaml:"height,omitempty" toml:"height" validate:"omitempty,min=0"`
	Padding         *int   `yaml:"padding,omitempty" toml:"padding" validate:"omitempty,min=0"`
}

// Fragment resolves the declared colours against palette.
func (m ModifierSpec) Fragment(palette style.Palette) style.Fragment {
	return style.Fragment{
		BackgroundColor: colorRef(m.BackgroundColor, palette),
		Color:           colorRef(m.Color, palette),
		BorderColor:     colorRef(m.BorderColor, palette),
		BorderWidth:     m.BorderWidth,
		BorderRadius:    m.BorderRadius,
		Width:           m.Width,
		Height:          m.Height,
		Padding:         m.Padding,
	}
}

func colorRef(value string, palette style.Palette) *string {
	if value == "" {
		return nil
	}
	if key, ok := strings.CutPrefix(value, "$"); ok {
		resolved := palette.Get(key)
		return &resolved
	}
	return &value
}

// ModifierFactory turns the configured modifiers into a factory that is
// re-evaluated whenever the palette changes. It is nil without modifiers.
func (c *Config) ModifierFactory() state.ModifierFactory {
	if len(c.Modifiers) == 0 {
		return nil
	}
	specs := make(map[string]ModifierSpec, len(c.Modifiers))
	for token, spec := range c.Modifiers {
		specs[token] = spec
	}
	return func(palette style.Palette) style.Modifiers {
		mods := make(style.Modifiers, len(specs))
		for token, spec := range specs {
			mods[token] = spec.Fragment(palette)
		}
		return mods
	}
}

// ThemeNames returns the declared theme names in sorted order.
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SharedState converts the document into the store's initial state.
func (c *Config) SharedState() state.SharedState {
	themes := make(map[string]style.Palette, len(c.Themes))
	for name, palette := range c.Themes {
		themes[name] = style.Palette(palette).Clone()
	}

	strs := make(state.Strings, len(c.Strings))
	for lang, table := range c.Strings {
		strs[strings.ToUpper(lang)] = state.StringTable(table)
	}

	return state.SharedState{
		Language:  strings.ToUpper(c.Language),
		Theme:     c.Theme,
		FontScale: c.FontScale,
		Themes:    themes,
		Strings:   strs,
		Modifiers: c.ModifierFactory(),
	}
}

// StoreMergeBase maps merge_base onto the store option value.
func (c *Config) StoreMergeBase() state.MergeBase {
	if c.MergeBase == "local" {
		return state.MergeLocal
	}
	return state.MergeAuthoritative
}

// ApplyDefaults fills optional fields.
func (c *Config) ApplyDefaults() {
	if c.FontScale == 0 {
		c.FontScale = 1
	}
	if c.MergeBase == "" {
		c.MergeBase = "authoritative"
	}
}

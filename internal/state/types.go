package state

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// StringTable is a nested table of translated strings for one language.
// Values are strings or nested StringTables (map[string]any as decoded).
type StringTable map[string]any

// Strings holds one StringTable per uppercase language code.
type Strings map[string]StringTable

// Languages returns the language codes in sorted order.
func (s Strings) Languages() []string {
	langs := make([]string, 0, len(s))
	for lang := range s {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// ModifierFactory builds provider modifiers for the active palette.
type ModifierFactory func(style.Palette) style.Modifiers

// SharedState is the process-wide UI state every hook observes.
type SharedState struct {
	Language  string
	Theme     string
	FontScale float64
	Palette   style.Palette
	Themes    map[string]style.Palette
	Strings   Strings
	Modifiers ModifierFactory
}

// Clone returns a copy whose top-level maps can be replaced without
// affecting the receiver.
func (s SharedState) Clone() SharedState {
	s.Palette = s.Palette.Clone()
	if s.Themes != nil {
		themes := make(map[string]style.Palette, len(s.Themes))
		for name, p := range s.Themes {
			themes[name] = p
		}
		s.Themes = themes
	}
	if s.Strings != nil {
		strs := make(Strings, len(s.Strings))
		for lang, table := range s.Strings {
			strs[lang] = table
		}
		s.Strings = strs
	}
	return s
}

// ProviderModifiers evaluates the modifier factory against the active palette.
func (s SharedState) ProviderModifiers() style.Modifiers {
	if s.Modifiers == nil {
		return style.Modifiers{}
	}
	mods := s.Modifiers(s.Palette)
	if mods == nil {
		return style.Modifiers{}
	}
	return mods
}

// Patch is a partial update. Nil fields leave the state unchanged.
type Patch struct {
	Language  *string
	Theme     *string
	FontScale *float64
	Palette   style.Palette
	Strings   Strings
	Modifiers ModifierFactory
}

// LanguagePatch returns a Patch that only sets the language.
func LanguagePatch(lang string) Patch {
	return Patch{Language: &lang}
}

// ThemePatch returns a Patch that only sets the theme name.
func ThemePatch(name string) Patch {
	return Patch{Theme: &name}
}

// FontScalePatch returns a Patch that only sets the font scale.
func FontScalePatch(scale float64) Patch {
	return Patch{FontScale: &scale}
}

// IsEmpty reports whether applying p would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Language == nil && p.Theme == nil && p.FontScale == nil &&
		p.Palette == nil && p.Strings == nil && p.Modifiers == nil
}

// Apply merges p over base and returns the new record; base is not mutated.
// The language is normalised to uppercase. Switching to a theme registered
// in Themes also switches the palette, unless p carries its own palette.
func (p Patch) Apply(base SharedState) SharedState {
	merged := base.Clone()
	if p.Language != nil {
		merged.Language = strings.ToUpper(*p.Language)
	}
	if p.FontScale != nil {
		merged.FontScale = *p.FontScale
	}
	if p.Theme != nil {
		merged.Theme = *p.Theme
		if palette, ok := merged.Themes[merged.Theme]; ok {
			merged.Palette = palette.Clone()
		}
	}
	if p.Palette != nil {
		merged.Palette = p.Palette.Clone()
		if merged.Theme != "" {
			if merged.Themes == nil {
				merged.Themes = map[string]style.Palette{}
			}
			merged.Themes[merged.Theme] = p.Palette.Clone()
		}
	}
	for lang, table := range p.Strings {
		if merged.Strings == nil {
			merged.Strings = Strings{}
		}
		merged.Strings[strings.ToUpper(lang)] = table
	}
	if p.Modifiers != nil {
		merged.Modifiers = p.Modifiers
	}
	return merged
}

// Normalize uppercases the language and the string table keys and resolves
// the palette of the named theme when none is set.
func (s SharedState) Normalize() SharedState {
	s = s.Clone()
	s.Language = strings.ToUpper(s.Language)
	if s.FontScale <= 0 {
		s.FontScale = 1
	}
	if s.Strings != nil {
		normalized := make(Strings, len(s.Strings))
		for lang, table := range s.Strings {
			normalized[strings.ToUpper(lang)] = table
		}
		s.Strings = normalized
	}
	if s.Palette == nil {
		if palette, ok := s.Themes[s.Theme]; ok {
			s.Palette = palette.Clone()
		}
	}
	return s
}

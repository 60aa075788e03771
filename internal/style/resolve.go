package style

import "strings"

// Resolved holds the two style records a button renders with.
type Resolved struct {
	Touchable Fragment `json:"touchable"`
	Text      Fragment `json:"text"`
}

// Tokens splits a modifier string into its ordered tokens.
func Tokens(modifiers string) []string {
	return strings.Fields(modifiers)
}

// ContainerModifiers returns the built-in touchable fragments for a palette.
// size feeds the round geometry; zero leaves it unset. Colours the palette
// lacks stay unset.
func ContainerModifiers(color Palette, size int) Modifiers {
	round := Fragment{
		BackgroundColor: color.Ref(KeyBackgroundColor),
		BorderColor:     color.Ref(KeyBorder),
		BorderWidth:     Int(1),
	}
	if size > 0 {
		round.Width = Int(size)
		round.Height = Int(size)
		round.BorderRadius = Int(size / 2)
	}

	return Modifiers{
		"success": {BackgroundColor: color.Ref(KeySuccess)},
		"error":   {BackgroundColor: color.Ref(KeyError)},
		"warn":    {BackgroundColor: color.Ref(KeyWarn)},
		"round":   round,
		"bordered": {
			BorderColor:  color.Ref(KeyBorder),
			BorderWidth:  Int(1),
			BorderRadius: Int(10),
		},
	}
}

// TextModifiers returns the built-in label fragments, including "default".
func TextModifiers(color Palette) Modifiers {
	return Modifiers{
		"default":  {Color: color.Ref(KeyText)},
		"round":    {Padding: Int(10)},
		"bordered": {Padding: Int(10)},
	}
}

// Fold applies the fragment of every known token in order over seed.
// Unknown tokens contribute nothing.
func Fold(seed Fragment, tokens []string, table Modifiers) Fragment {
	for _, token := range tokens {
		if frag, ok := table[token]; ok {
			seed = seed.Merge(frag)
		}
	}
	return seed
}

// Resolve computes the touchable and text styles for a modifier string.
// Built-in fragments are applied first, then provider fragments; within a
// layer a later token wins on conflicting fields.
func Resolve(modifiers string, color Palette, size int, provider Modifiers) Resolved {
	tokens := Tokens(modifiers)
	textTable := TextModifiers(color)

	touchable := Fold(Fragment{}, tokens, ContainerModifiers(color, size))
	text := Fold(textTable["default"], tokens, textTable)
	custom := Fold(Fragment{}, tokens, provider)

	touchable = touchable.Merge(custom.container())
	text = text.Merge(custom.label())

	return Resolved{Touchable: touchable, Text: text}
}

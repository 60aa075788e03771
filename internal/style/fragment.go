package style

// Palette maps a palette key (text, border, success, ...) to a colour.
type Palette map[string]string

// Palette keys read by the built-in modifiers.
const (
	KeyText            = "text"
	KeyBackground      = "background"
	KeyBackgroundColor = "backgroundColor"
	KeyBorder          = "border"
	KeySuccess         = "success"
	KeyError           = "error"
	KeyWarn            = "warn"
	KeyPrimary         = "primary"
)

// Get returns the colour for key, or "" when the palette has none.
func (p Palette) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Ref returns the colour for key as a fragment field, nil when the palette
// has no colour for it.
func (p Palette) Ref(key string) *string {
	if c := p.Get(key); c != "" {
		return &c
	}
	return nil
}

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Fragment is a partial style record. Nil fields are unset and never
// override a value set by an earlier fragment.
type Fragment struct {
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	Color           *string `json:"color,omitempty"`
	BorderColor     *string `json:"borderColor,omitempty"`
	BorderWidth     *int    `json:"borderWidth,omitempty"`
	BorderRadius    *int    `json:"borderRadius,omitempty"`
	Width           *int    `json:"width,omitempty"`
	Height          *int    `json:"height,omitempty"`
	Padding         *int    `json:"padding,omitempty"`
}

// Modifiers maps a modifier token to the fragment it contributes.
type Modifiers map[string]Fragment

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Merge layers over on top of f: every field set in over replaces the
// corresponding field of f.
func (f Fragment) Merge(over Fragment) Fragment {
	if over.BackgroundColor != nil {
		f.BackgroundColor = over.BackgroundColor
	}
	if over.Color != nil {
		f.Color = over.Color
	}
	if over.BorderColor != nil {
		f.BorderColor = over.BorderColor
	}
	if over.BorderWidth != nil {
		f.BorderWidth = over.BorderWidth
	}
	if over.BorderRadius != nil {
		f.BorderRadius = over.BorderRadius
	}
	if over.Width != nil {
		f.Width = over.Width
	}
	if over.Height != nil {
		f.Height = over.Height
	}
	if over.Padding != nil {
		f.Padding = over.Padding
	}
	return f
}

// IsZero reports whether no field is set.
func (f Fragment) IsZero() bool {
	return f == Fragment{}
}

// container keeps the fields that style the touchable surface.
func (f Fragment) container() Fragment {
	return Fragment{
		BackgroundColor: f.BackgroundColor,
		BorderColor:     f.BorderColor,
		BorderWidth:     f.BorderWidth,
		BorderRadius:    f.BorderRadius,
		Width:           f.Width,
		Height:          f.Height,
	}
}

// label keeps the fields that style the text inside the surface.
func (f Fragment) label() Fragment {
	return Fragment{Color: f.Color, Padding: f.Padding}
}

// Values flattens the set fields into a plain record, handy for printing.
func (f Fragment) Values() map[string]any {
	out := map[string]any{}
	put := func(name string, s *string) {
		if s != nil {
			out[name] = *s
		}
	}
	putInt := func(name string, i *int) {
		if i != nil {
			out[name] = *i
		}
	}
	put("backgroundColor", f.BackgroundColor)
	put("color", f.Color)
	put("borderColor", f.BorderColor)
	putInt("borderWidth", f.BorderWidth)
	putInt("borderRadius", f.BorderRadius)
	putInt("width", f.Width)
	putInt("height", f.Height)
	putInt("padding", f.Padding)
	return out
}

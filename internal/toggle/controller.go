// Package toggle implements the cycling behaviour of toggle buttons: each
// activation applies the next language, font scale and theme from the
// caller's lists.
package toggle

// LanguageSetter receives language toggles. The i18n hook satisfies it.
type LanguageSetter interface {
	SetLanguage(lang string)
}

// ThemeSetter receives theme and font scale toggles. The theme hook satisfies it.
type ThemeSetter interface {
	SetTheme(name string)
	SetFontScale(scale float64)
}

// Options configures a Controller. A nil or empty list disables its cursor.
type Options struct {
	LangToggle      []string
	FontScaleToggle []float64
	ThemeToggle     []string
	// OnToggle runs once per activation that fired at least one cursor,
	// with the value of the last cursor that fired.
	OnToggle func(value any)
	// OnPress runs on every activation, after the cursors.
	OnPress func()
}

// Controller holds the three cursors of one mounted button.
type Controller struct {
	lang      *Cursor[string]
	fontScale *Cursor[float64]
	theme     *Cursor[string]

	language LanguageSetter
	themer   ThemeSetter

	opts     Options
	onToggle func(any)
	onPress  func()

	last any
}

// NewController builds a controller; every cursor starts at index 0.
func NewController(opts Options, language LanguageSetter, themer ThemeSetter) *Controller {
	c := &Controller{
		language: language,
		themer:   themer,
		opts:     opts,
		onToggle: opts.OnToggle,
		onPress:  opts.OnPress,
	}
	if len(opts.LangToggle) > 0 {
		c.lang = NewCursor(opts.LangToggle)
	}
	if len(opts.FontScaleToggle) > 0 {
		c.fontScale = NewCursor(opts.FontScaleToggle)
	}
	if len(opts.ThemeToggle) > 0 {
		c.theme = NewCursor(opts.ThemeToggle)
	}
	return c
}

// Toggles reports whether any cursor is configured.
func (c *Controller) Toggles() bool {
	return c.lang != nil || c.fontScale != nil || c.theme != nil
}

// Options returns the options the controller was built with.
func (c *Controller) Options() Options {
	return c.opts
}

// Last returns the most recently toggled value, nil before the first activation.
func (c *Controller) Last() any {
	return c.last
}

// Activate fires every configured cursor in the fixed order language,
// font scale, theme. It returns the value of the last cursor that fired.
func (c *Controller) Activate() (any, bool) {
	fired := false

	if lang, ok := c.lang.Next(); ok && c.language != nil {
		c.language.SetLanguage(lang)
		c.last, fired = lang, true
	}
	if scale, ok := c.fontScale.Next(); ok && c.themer != nil {
		c.themer.SetFontScale(scale)
		c.last, fired = scale, true
	}
	if name, ok := c.theme.Next(); ok && c.themer != nil {
		c.themer.SetTheme(name)
		c.last, fired = name, true
	}

	if c.onPress != nil {
		c.onPress()
	}
	if fired && c.onToggle != nil {
		c.onToggle(c.last)
	}
	if !fired {
		return nil, false
	}
	return c.last, true
}

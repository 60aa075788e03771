package toggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/hooks"
	"github.com/alexisbeaulieu97/themekit/internal/state"
)

type recorder struct {
	calls []string
}

func (r *recorder) SetLanguage(lang string)    { r.calls = append(r.calls, "lang:"+lang) }
func (r *recorder) SetTheme(name string)       { r.calls = append(r.calls, "theme:"+name) }
func (r *recorder) SetFontScale(scale float64) { r.calls = append(r.calls, "scale") }

func TestCursorCycles(t *testing.T) {
	t.Parallel()

	c := NewCursor([]string{"EN", "FR", "DE"})
	var got []string
	for i := 0; i < 4; i++ {
		v, ok := c.Next()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"EN", "FR", "DE", "EN"}, got)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 3, c.Len())

	peek, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, "FR", peek)
	assert.Equal(t, 1, c.Index())
}

func TestCursorEmpty(t *testing.T) {
	t.Parallel()

	var nilCursor *Cursor[int]
	_, ok := nilCursor.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, nilCursor.Len())

	empty := NewCursor[int](nil)
	_, ok = empty.Next()
	assert.False(t, ok)
	_, ok = empty.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Index())
}

func TestCursorCopiesList(t *testing.T) {
	t.Parallel()

	list := []float64{1, 2}
	c := NewCursor(list)
	list[0] = 9
	v, _ := c.Next()
	assert.Equal(t, 1.0, v)
}

func TestLanguageToggleBroadcastSequence(t *testing.T) {
	t.Parallel()

	store := state.New(state.SharedState{Language: "EN"})
	var broadcast []string
	store.Subscribe(func(st state.SharedState) { broadcast = append(broadcast, st.Language) })

	i18n := hooks.UseI18n(store)
	theme := hooks.UseTheme(store)
	defer i18n.Unmount()
	defer theme.Unmount()

	c := NewController(Options{LangToggle: []string{"EN", "FR", "DE"}}, i18n, theme)
	for i := 0; i < 4; i++ {
		c.Activate()
	}

	assert.Equal(t, []string{"EN", "FR", "DE", "EN"}, broadcast)
}

func TestActivateFiresInFixedOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	var observed []any
	c := NewController(Options{
		LangToggle:      []string{"fr"},
		FontScaleToggle: []float64{1.5},
		ThemeToggle:     []string{"dark"},
		OnToggle:        func(v any) { observed = append(observed, v) },
	}, rec, rec)

	last, fired := c.Activate()
	require.True(t, fired)
	assert.Equal(t, []string{"lang:fr", "scale", "theme:dark"}, rec.calls)
	assert.Equal(t, "dark", last)
	assert.Equal(t, []any{"dark"}, observed, "observer runs once with the last fired value")
}

func TestActivateReportsFontScaleWhenLast(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(Options{
		LangToggle:      []string{"fr"},
		FontScaleToggle: []float64{1, 1.25},
	}, rec, rec)

	last, _ := c.Activate()
	assert.Equal(t, 1.0, last)
	last, _ = c.Activate()
	assert.Equal(t, 1.25, last)
	assert.Equal(t, 1.25, c.Last())
}

func TestActivateWithoutToggles(t *testing.T) {
	t.Parallel()

	pressed := 0
	toggled := 0
	c := NewController(Options{
		OnPress:  func() { pressed++ },
		OnToggle: func(any) { toggled++ },
	}, &recorder{}, &recorder{})

	assert.False(t, c.Toggles())
	last, fired := c.Activate()
	assert.False(t, fired)
	assert.Nil(t, last)
	assert.Equal(t, 1, pressed)
	assert.Equal(t, 0, toggled)
}

func TestThemeAndFontScaleTogglesReachStore(t *testing.T) {
	t.Parallel()

	store := state.New(state.SharedState{Language: "EN", Theme: "light", FontScale: 1})
	theme := hooks.UseTheme(store)
	i18n := hooks.UseI18n(store)
	defer theme.Unmount()
	defer i18n.Unmount()

	c := NewController(Options{
		FontScaleToggle: []float64{1.25, 1.5},
		ThemeToggle:     []string{"dark", "light"},
	}, i18n, theme)
	require.True(t, c.Toggles())

	c.Activate()
	st := store.State()
	assert.Equal(t, 1.25, st.FontScale)
	assert.Equal(t, "dark", st.Theme)

	c.Activate()
	st = store.State()
	assert.Equal(t, 1.5, st.FontScale)
	assert.Equal(t, "light", st.Theme)
	assert.Equal(t, "EN", st.Language)
}

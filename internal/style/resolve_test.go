package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() Palette {
	return Palette{
		KeyText:            "#111827",
		KeyBackgroundColor: "#f9fafb",
		KeyBorder:          "#cbd5e1",
		KeySuccess:         "#22c55e",
		KeyError:           "#ef4444",
		KeyWarn:            "#eab308",
	}
}

func TestResolveRoundGeometry(t *testing.T) {
	t.Parallel()

	got := Resolve("round", testPalette(), 40, nil)

	require.NotNil(t, got.Touchable.Width)
	assert.Equal(t, 40, *got.Touchable.Width)
	assert.Equal(t, 40, *got.Touchable.Height)
	assert.Equal(t, 20, *got.Touchable.BorderRadius)
	assert.Equal(t, 1, *got.Touchable.BorderWidth)
	assert.Equal(t, "#cbd5e1", *got.Touchable.BorderColor)
	assert.Equal(t, 10, *got.Text.Padding)
}

func TestResolveRoundWithoutSizeLeavesGeometryUnset(t *testing.T) {
	t.Parallel()

	got := Resolve("round", testPalette(), 0, nil)
	assert.Nil(t, got.Touchable.Width)
	assert.Nil(t, got.Touchable.Height)
	assert.Nil(t, got.Touchable.BorderRadius)
	assert.NotNil(t, got.Touchable.BorderWidth)
}

func TestResolveDefaultTextColour(t *testing.T) {
	t.Parallel()

	got := Resolve("", testPalette(), 0, nil)
	assert.True(t, got.Touchable.IsZero())
	require.NotNil(t, got.Text.Color)
	assert.Equal(t, "#111827", *got.Text.Color)
}

func TestResolveUnknownTokensAreIgnored(t *testing.T) {
	t.Parallel()

	empty := Resolve("", testPalette(), 40, Modifiers{})
	for _, tokens := range []string{"sparkly", "sparkly glitter", "  unknown  "} {
		assert.Equal(t, empty, Resolve(tokens, testPalette(), 40, Modifiers{}), tokens)
	}
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	provider := Modifiers{"brand": {Color: Str("#ff00ff")}}
	first := Resolve("round success brand", testPalette(), 32, provider)
	second := Resolve("round success brand", testPalette(), 32, provider)
	assert.Equal(t, first.Touchable.Values(), second.Touchable.Values())
	assert.Equal(t, first.Text.Values(), second.Text.Values())
}

func TestResolveLaterTokenWins(t *testing.T) {
	t.Parallel()

	got := Resolve("success error", testPalette(), 0, nil)
	assert.Equal(t, "#ef4444", *got.Touchable.BackgroundColor)

	got = Resolve("error success", testPalette(), 0, nil)
	assert.Equal(t, "#22c55e", *got.Touchable.BackgroundColor)

	// round sets its own background; success after it replaces only that field.
	got = Resolve("round success", testPalette(), 40, nil)
	assert.Equal(t, "#22c55e", *got.Touchable.BackgroundColor)
	assert.Equal(t, 20, *got.Touchable.BorderRadius)

	got = Resolve("round bordered", testPalette(), 40, nil)
	assert.Equal(t, 10, *got.Touchable.BorderRadius)
	assert.Equal(t, 40, *got.Touchable.Width)
}

func TestResolveProviderColourWins(t *testing.T) {
	t.Parallel()

	provider := Modifiers{
		"brand":  {Color: Str("#ff00ff")},
		"accent": {Color: Str("#00ffff"), BackgroundColor: Str("#000000")},
		"wide":   {Width: Int(120)},
	}

	got := Resolve("brand", testPalette(), 0, provider)
	assert.Equal(t, "#ff00ff", *got.Text.Color)

	got = Resolve("brand accent", testPalette(), 0, provider)
	assert.Equal(t, "#00ffff", *got.Text.Color)
	assert.Equal(t, "#000000", *got.Touchable.BackgroundColor)

	got = Resolve("wide", testPalette(), 0, provider)
	assert.Equal(t, "#111827", *got.Text.Color, "built-in colour stands without a provider colour")
	assert.Equal(t, 120, *got.Touchable.Width)
}

func TestResolveProviderLayersOverBuiltins(t *testing.T) {
	t.Parallel()

	provider := Modifiers{"success": {BackgroundColor: Str("#14532d")}}
	got := Resolve("success", testPalette(), 0, provider)
	assert.Equal(t, "#14532d", *got.Touchable.BackgroundColor)
}

func TestFragmentMergeKeepsUnsetFields(t *testing.T) {
	t.Parallel()

	base := Fragment{Color: Str("red"), Padding: Int(4)}
	merged := base.Merge(Fragment{Padding: Int(8)})
	assert.Equal(t, "red", *merged.Color)
	assert.Equal(t, 8, *merged.Padding)
	assert.Equal(t, 4, *base.Padding, "merge must not mutate the receiver")
}

func TestFragmentValues(t *testing.T) {
	t.Parallel()

	values := Fragment{Width: Int(40), Color: Str("#fff")}.Values()
	assert.Equal(t, map[string]any{"width": 40, "color": "#fff"}, values)
}

func TestCellConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Columns(0))
	assert.Equal(t, 1, Columns(3))
	assert.Equal(t, 8, Columns(40))
	assert.Equal(t, 4, Rows(40))
	assert.Equal(t, 1, Rows(10))
}

func TestApplyBorders(t *testing.T) {
	t.Parallel()

	rounded := Fragment{BorderWidth: Int(1), BorderRadius: Int(10)}.Apply(lipgloss.NewStyle())
	assert.Equal(t, lipgloss.RoundedBorder(), rounded.GetBorderStyle())

	square := Fragment{BorderWidth: Int(1)}.Apply(lipgloss.NewStyle())
	assert.Equal(t, lipgloss.NormalBorder(), square.GetBorderStyle())

	none := Fragment{BorderRadius: Int(10)}.Apply(lipgloss.NewStyle())
	assert.Equal(t, lipgloss.Border{}, none.GetBorderStyle())
}

func TestApplyGeometryAndColour(t *testing.T) {
	t.Parallel()

	got := Resolve("round success", testPalette(), 40, nil)
	container := got.Touchable.Apply(lipgloss.NewStyle())
	assert.Equal(t, 8, container.GetWidth())
	assert.Equal(t, 4, container.GetHeight())
	assert.Equal(t, lipgloss.Color("#22c55e"), container.GetBackground())

	label := got.Text.Apply(lipgloss.NewStyle())
	assert.Equal(t, lipgloss.Color("#111827"), label.GetForeground())
	assert.Equal(t, 1, label.GetPaddingTop())
	assert.Equal(t, 2, label.GetPaddingLeft())
}

func TestPaletteHelpers(t *testing.T) {
	t.Parallel()

	var nilPalette Palette
	assert.Equal(t, "", nilPalette.Get(KeyText))
	assert.Nil(t, nilPalette.Clone())

	p := Palette{"b": "2", "a": "1"}
	clone := p.Clone()
	clone["a"] = "x"
	assert.Equal(t, "1", p["a"])
	assert.Nil(t, nilPalette.Ref(KeyText))
	require.NotNil(t, p.Ref("a"))
	assert.Equal(t, "1", *p.Ref("a"))
}

func TestResolveLeavesMissingColoursUnset(t *testing.T) {
	t.Parallel()

	got := Resolve("success round bordered", Palette{}, 40, nil)

	assert.Nil(t, got.Touchable.BackgroundColor)
	assert.Nil(t, got.Touchable.BorderColor)
	assert.Nil(t, got.Text.Color)
	assert.NotContains(t, got.Touchable.Values(), "backgroundColor")
	assert.NotContains(t, got.Text.Values(), "color")
	assert.Equal(t, 40, *got.Touchable.Width)

	partial := Resolve("success error", Palette{KeySuccess: "#22c55e"}, 0, nil)
	require.NotNil(t, partial.Touchable.BackgroundColor)
	assert.Equal(t, "#22c55e", *partial.Touchable.BackgroundColor)
}

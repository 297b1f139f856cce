package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	theme := Theme{
		"colors": map[string]any{
			"background": "white",
			"text":       "black",
			"primary":    "#07f",
			"gray":       []any{"#eee", "#999", "#333"},
		},
		"space": []any{0, 8, 16, 32, 64, 128, 256},
		"sizes": []int{0, 8, 16, 32, 64, 128, 256},
		"syntaxHighlighting": map[string]string{
			"foreground": "#222",
		},
		"empty": nil,
	}

	cases := []struct {
		name     string
		path     string
		fallback []any
		want     any
	}{
		{name: "sequence index", path: "space.3", want: 32},
		{name: "typed sequence index", path: "sizes.5", want: 128},
		{name: "mapping key", path: "colors.primary", want: "#07f"},
		{name: "nested sequence", path: "colors.gray.1", want: "#999"},
		{name: "extension key", path: "syntaxHighlighting.foreground", want: "#222"},
		{name: "whole scale", path: "space", want: []any{0, 8, 16, 32, 64, 128, 256}},
		{name: "missing path falls back to path", path: "space.99", want: "space.99"},
		{name: "missing scale falls back to path", path: "fonts.body", want: "fonts.body"},
		{name: "explicit fallback", path: "fonts.body", fallback: []any{"system-ui"}, want: "system-ui"},
		{name: "nil fallback is honoured", path: "fonts.body", fallback: []any{nil}, want: nil},
		{name: "name into sequence misses", path: "space.xs", want: "space.xs"},
		{name: "index into mapping misses", path: "colors.0", want: "colors.0"},
		{name: "walk through literal misses", path: "colors.primary.dark", want: "colors.primary.dark"},
		{name: "stored nil counts as missing", path: "empty", fallback: []any{"x"}, want: "x"},
		{name: "leading zero is not an index", path: "space.03", want: "space.03"},
		{name: "negative index", path: "space.-1", want: "space.-1"},
		{name: "empty path", path: "", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Get(theme, tc.path, tc.fallback...))
		})
	}
}

func TestGetNilTheme(t *testing.T) {
	t.Parallel()

	require.Equal(t, "space.3", Get(nil, "space.3"))
	_, ok := Lookup(nil, "space.3")
	require.False(t, ok)
}

func TestLookupReportsSuccess(t *testing.T) {
	t.Parallel()

	theme := Theme{"space": []any{0, 8, 16, 32}}

	value, ok := Lookup(theme, "space.3")
	require.True(t, ok)
	require.Equal(t, 32, value)

	value, ok = Lookup(theme, "space.4")
	require.False(t, ok)
	require.Nil(t, value)
}

func TestGetWalksColorModeScale(t *testing.T) {
	t.Parallel()

	mode := ColorMode{
		Primary: ColorScale("#cde", "#07f", "#024"),
		Extra:   map[string]Color{"seriousPink": ColorScale("#fce", "#f39", "#903")},
	}
	theme := Theme{}.WithColorMode(mode)

	require.Equal(t, "#024", Get(theme, "colors.primary.2"))
	require.Equal(t, "#f39", Get(theme, "colors.seriousPink.1"))
}

package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

func TestThemeModes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		mode string
		path string
		want any
	}{
		{name: "light by default", mode: "", path: "colors.text", want: "#111827"},
		{name: "explicit light", mode: ModeLight, path: "colors.background", want: "#f9fafb"},
		{name: "dark overlay", mode: ModeDark, path: "colors.text", want: "#f9fafb"},
		{name: "extra role", mode: ModeDark, path: "colors.danger", want: "#f87171"},
		{name: "palette family shade", mode: ModeDark, path: "colors.blue.5", want: "#3b82f6"},
		{name: "space in pixels", mode: "", path: "space.3", want: 32},
		{name: "named font weight", mode: "", path: "fontWeights.semibold", want: 600},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			theme, err := Theme(Default, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, css.Get(theme, tc.path))
		})
	}
}

func TestThemeErrors(t *testing.T) {
	t.Parallel()

	_, err := Theme("solarized", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown preset "solarized"`)

	_, err = Theme(Default, "sepia")
	require.Error(t, err)
	require.Contains(t, err.Error(), `no color mode "sepia"`)
}

func TestThemeReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first, err := Theme(Default, "")
	require.NoError(t, err)
	first["space"].([]any)[1] = 999

	second, err := Theme(Default, "")
	require.NoError(t, err)
	assert.Equal(t, 16, css.Get(second, "space.1"))
}

func TestResolveAgainstPreset(t *testing.T) {
	t.Parallel()

	theme, err := Theme(Default, ModeDark)
	require.NoError(t, err)

	got := css.Resolve(css.Description{
		"bg":         css.Lit("primary"),
		"px":         css.Lit(2),
		"fontWeight": css.Lit("bold"),
		"border":     css.Lit("normal"),
	}, theme)

	assert.Equal(t, css.Resolved{
		"bg":         "#60a5fa",
		"px":         24,
		"fontWeight": 700,
		"border":     "1px solid",
	}, got)
}

func TestModes(t *testing.T) {
	t.Parallel()

	modes, ok := Modes(Default)
	require.True(t, ok)
	require.Len(t, modes, 2)

	dark := modes[ModeDark]
	assert.Equal(t, "#f9fafb", dark.Text.String())
	assert.Contains(t, dark.Roles(), "success")

	_, ok = Modes("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{Default}, Names())
}

package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	input := Resolved{
		"bg":      "white",
		"mx":      8,
		"py":      4,
		"size":    32,
		"windows": "baz",
		"> form": Resolved{
			"p":  16,
			"mt": -8,
		},
	}

	got := Expand(input)

	require.Equal(t, Resolved{
		"backgroundColor": "white",
		"marginLeft":      8,
		"marginRight":     8,
		"paddingTop":      4,
		"paddingBottom":   4,
		"width":           32,
		"height":          32,
		"windows":         "baz",
		"> form": Resolved{
			"padding":   16,
			"marginTop": -8,
		},
	}, got)

	require.Equal(t, "white", input["bg"], "input must not be modified")
}

func TestExpandExplicitKeyWins(t *testing.T) {
	t.Parallel()

	got := Expand(Resolved{
		"size":            10,
		"width":           20,
		"bg":              "red",
		"backgroundColor": "blue",
	})

	require.Equal(t, Resolved{"width": 20, "height": 10, "backgroundColor": "blue"}, got)
}

func TestScaleFor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"bg":         "colors",
		"color":      "colors",
		"p":          "space",
		"mx":         "space",
		"fontSize":   "fontSizes",
		"size":       "sizes",
		"zIndex":     "zIndices",
		"boxShadow":  "shadows",
		"lineHeight": "lineHeights",
	}
	for prop, want := range cases {
		got, ok := ScaleFor(prop)
		require.True(t, ok, prop)
		require.Equal(t, want, got, prop)
	}

	_, ok := ScaleFor("windows")
	require.False(t, ok)
}

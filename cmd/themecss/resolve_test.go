package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolveCommandYAML(t *testing.T) {
	t.Parallel()

	themePath, stylePath := writeFixtures(t)

	stdout, _, err := executeCommand("resolve", "--theme", themePath, "--style", stylePath)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))

	assert.Equal(t, "#07f", got["bg"])
	assert.Equal(t, 16, got["p"])
	assert.Equal(t, -32, got["mx"])
	assert.Equal(t, "foo", got["widows"])
	assert.Equal(t, map[string]any{"color": "black", "fontSize": 24}, got["> form"])
}

func TestResolveCommandJSONWithModeAndExpand(t *testing.T) {
	t.Parallel()

	themePath, stylePath := writeFixtures(t)

	stdout, _, err := executeCommand("resolve", "--theme", themePath, "--style", stylePath,
		"--mode", "dark", "--expand", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	assert.Equal(t, "#07f", got["backgroundColor"])
	assert.Equal(t, float64(16), got["padding"])
	assert.Equal(t, float64(-32), got["marginLeft"])
	assert.Equal(t, float64(-32), got["marginRight"])
	assert.NotContains(t, got, "bg")
	assert.NotContains(t, got, "mx")

	form, ok := got["> form"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "white", form["color"])
}

func TestResolveCommandErrors(t *testing.T) {
	t.Parallel()

	themePath, stylePath := writeFixtures(t)

	cases := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "unknown format",
			args:    []string{"resolve", "--theme", themePath, "--style", stylePath, "--format", "toml"},
			message: `unknown format "toml"`,
		},
		{
			name:    "missing theme file",
			args:    []string{"resolve", "--theme", themePath + ".missing", "--style", stylePath},
			message: "theme file does not exist",
		},
		{
			name:    "unknown mode",
			args:    []string{"resolve", "--theme", themePath, "--style", stylePath, "--mode", "sepia"},
			message: "loading theme",
		},
		{
			name:    "missing required flag",
			args:    []string{"resolve", "--theme", themePath},
			message: "required flag",
		},
		{
			name:    "unknown preset",
			args:    []string{"resolve", "--preset", "solarized", "--style", stylePath},
			message: `unknown preset "solarized"`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := executeCommand(tc.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestResolveCommandInvalidStyle(t *testing.T) {
	t.Parallel()

	themePath, _ := writeFixtures(t)
	stylePath := writeTestFile(t, "broken.yaml", "version: \"1.0.0\"\nstyle: [unterminated\n")

	_, _, err := executeCommand("resolve", "--theme", themePath, "--style", stylePath)
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestResolveCommandExampleFiles(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("resolve",
		"--theme", "../../examples/themes/docs.yaml",
		"--style", "../../examples/styles/card.yaml",
		"--mode", "dark")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))

	assert.Equal(t, "#fff", got["color"])
	assert.Equal(t, "#191919", got["bg"])
	assert.Equal(t, 16, got["p"])
	assert.Equal(t, "1px solid", got["border"])
	assert.Equal(t, 4, got["borderRadius"])
	assert.Equal(t, map[string]any{"color": "#3cf", "fontSize": 24, "fontWeight": 700}, got["h2"])
	assert.Equal(t, map[string]any{"mt": -8, "color": "#adb5bd", "fontStyle": "italic"}, got["figcaption"])
}

func TestResolveCommandJSONWithNumericSelectorKeys(t *testing.T) {
	t.Parallel()

	themePath, _ := writeFixtures(t)
	stylePath := writeTestFile(t, "keyframes.yaml", `version: "1.0.0"
style:
  "@keyframes fade":
    0:
      color: text
    100:
      color: primary
`)

	stdout, _, err := executeCommand("resolve", "--theme", themePath, "--style", stylePath, "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, map[string]any{
		"0":   map[string]any{"color": "black"},
		"100": map[string]any{"color": "#07f"},
	}, got["@keyframes fade"])
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testThemeYAML = `version: "1.0.0"
name: docs
theme:
  colors:
    background: white
    text: black
    primary: "#07f"
  space: [0, 8, 16, 32, 64, 128, 256]
  fontSizes: [12, 14, 16, 20, 24]
modes:
  dark:
    text: white
    background: black
`

const testStyleYAML = `version: "1.0.0"
name: form
style:
  bg: primary
  p: 2
  mx: -3
  widows: foo
  "> form":
    color: text
    fontSize: 4
`

func writeTestFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func writeFixtures(t *testing.T) (themePath, stylePath string) {
	t.Helper()
	return writeTestFile(t, "theme.yaml", testThemeYAML), writeTestFile(t, "style.yaml", testStyleYAML)
}

func executeCommand(args ...string) (stdout, stderr string, err error) {
	root := newRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

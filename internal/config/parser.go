package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themecss/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTheme loads a theme file from disk, validates it, and returns the result.
func ParseTheme(path string) (*ThemeFile, error) {
	var file ThemeFile
	if err := decodeFile(path, themeerrors.DocumentTheme, &file); err != nil {
		return nil, err
	}
	if err := ValidateTheme(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// ParseStyle loads a style file from disk, validates it, and returns the result.
func ParseStyle(path string) (*StyleFile, error) {
	var file StyleFile
	if err := decodeFile(path, themeerrors.DocumentStyle, &file); err != nil {
		return nil, err
	}
	if err := ValidateStyle(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// decodeFile rejects unknown top-level keys. An empty document decodes to the zero
// value and is left for validation to reject.
func decodeFile(path, document string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return themeerrors.NewParseError(document, path, 0, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return themeerrors.NewParseError(document, path, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func sortedStrings(values []string) []string {
	sort.Strings(values)
	return values
}

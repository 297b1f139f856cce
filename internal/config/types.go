package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
	themeerrors "github.com/alexisbeaulieu97/themecss/pkg/errors"
)

// ThemeFile is the on-disk representation of a theme.
//
//	version: "1.0"
//	name: docs
//	theme:
//	  colors: {text: black, background: white, primary: "#07f"}
//	  space: [0, 8, 16, 32, 64]
//	modes:
//	  dark: {text: white, background: black}
type ThemeFile struct {
	Version     string                   `yaml:"version" validate:"required,semver"`
	Name        string                   `yaml:"name" validate:"required,min=1,max=100"`
	Description string                   `yaml:"description,omitempty"`
	Theme       map[string]any           `yaml:"theme" validate:"required"`
	Modes       map[string]css.ColorMode `yaml:"modes,omitempty" validate:"omitempty,dive,keys,mode_name,endkeys"`
}

// StyleFile is the on-disk representation of a style description. Nested mappings
// under style are selector blocks.
type StyleFile struct {
	Version     string         `yaml:"version" validate:"required,semver"`
	Name        string         `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Description string         `yaml:"description,omitempty"`
	Style       map[string]any `yaml:"style" validate:"required"`
}

// Build returns the theme, with the named color mode applied to its colors scale
// when mode is not empty.
func (f *ThemeFile) Build(mode string) (css.Theme, error) {
	theme := css.Theme(cloneMap(f.Theme))
	if mode == "" {
		return theme, nil
	}

	colorMode, ok := f.Modes[mode]
	if !ok {
		return nil, themeerrors.NewValidationError("modes", fmt.Sprintf("unknown color mode %q", mode), nil)
	}
	return theme.WithColorMode(colorMode), nil
}

// ModeNames lists the color modes defined by the file.
func (f *ThemeFile) ModeNames() []string {
	names := make([]string, 0, len(f.Modes))
	for name := range f.Modes {
		names = append(names, name)
	}
	return sortedStrings(names)
}

// StyleDescription converts the style mapping into a resolver description.
func (f *StyleFile) StyleDescription() css.Description {
	return css.FromMap(f.Style)
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	clone := make(map[string]any, len(src))
	for k, v := range src {
		clone[k] = v
	}
	return clone
}

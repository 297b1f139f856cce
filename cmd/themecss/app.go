package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themecss/internal/config"
	"github.com/alexisbeaulieu97/themecss/internal/logger"
	"github.com/alexisbeaulieu97/themecss/internal/preset"
	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

// appContext bundles the services a command needs.
type appContext struct {
	log    *logger.Logger
	loader *config.Loader
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, err
	}

	return &appContext{log: log, loader: config.NewLoader(log)}, nil
}

// themeSource selects a theme file or a built-in preset, plus a color mode.
type themeSource struct {
	path   string
	preset string
	mode   string
}

func (s *themeSource) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.path, "theme", "t", "", "Path to theme file")
	cmd.Flags().StringVarP(&s.preset, "preset", "p", "", fmt.Sprintf("Built-in theme to use instead of a file (%s)", strings.Join(preset.Names(), ", ")))
	cmd.Flags().StringVarP(&s.mode, "mode", "m", "", "Color mode to apply to the theme")
	cmd.MarkFlagsMutuallyExclusive("theme", "preset")
}

func (s themeSource) validate() error {
	if s.path == "" {
		return nil
	}
	return validateInputPath("theme", s.path)
}

func (s themeSource) label() string {
	name := s.path
	if name == "" {
		name = "preset:" + s.presetName()
	}
	if s.mode != "" {
		name += " (" + s.mode + ")"
	}
	return name
}

func (s themeSource) presetName() string {
	if s.preset == "" {
		return preset.Default
	}
	return s.preset
}

func (a *appContext) loadTheme(ctx context.Context, src themeSource) (css.Theme, error) {
	if src.path != "" {
		return a.loader.LoadTheme(ctx, src.path, src.mode)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	theme, err := preset.Theme(src.presetName(), src.mode)
	if err != nil {
		return nil, err
	}
	a.log.Debug("preset loaded", "preset", src.presetName(), "mode", src.mode)
	return theme, nil
}

func validateInputPath(kind, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file is required", kind)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", kind, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s file does not exist: %s", kind, abs)
		}
		return fmt.Errorf("stat %s file: %w", kind, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", kind, abs)
	}
	return nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

package config

import (
	"context"

	"github.com/alexisbeaulieu97/themecss/internal/logger"
	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

// Loader reads theme and style documents from disk and logs what it loads.
type Loader struct {
	logger *logger.Logger
}

// NewLoader returns a Loader. A nil logger disables logging.
func NewLoader(log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{logger: log}
}

// LoadTheme parses the theme file at path and applies the named color mode.
func (l *Loader) LoadTheme(ctx context.Context, path, mode string) (css.Theme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := l.logger.WithFields(map[string]any{"path": path, "document": "theme"})
	log.Debug("loading theme")

	file, err := ParseTheme(path)
	if err != nil {
		log.Error(err, "failed to load theme")
		return nil, err
	}

	theme, err := file.Build(mode)
	if err != nil {
		log.Error(err, "failed to apply color mode", "mode", mode, "modes", file.ModeNames())
		return nil, err
	}

	log.Info("theme loaded", "name", file.Name, "scales", sortedStrings(keys(theme)), "mode", mode)
	return theme, nil
}

// LoadStyle parses the style file at path into a description.
func (l *Loader) LoadStyle(ctx context.Context, path string) (css.Description, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := l.logger.WithFields(map[string]any{"path": path, "document": "style"})
	log.Debug("loading style")

	file, err := ParseStyle(path)
	if err != nil {
		log.Error(err, "failed to load style")
		return nil, err
	}

	log.Info("style loaded", "name", file.Name, "properties", len(file.Style))
	return file.StyleDescription(), nil
}

package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecss/internal/logger"
	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

func TestLoaderLoadsThemeAndStyle(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	loader := NewLoader(log)
	ctx := context.Background()

	theme, err := loader.LoadTheme(ctx, writeFile(t, "theme.yaml", docsThemeYAML), "dark")
	require.NoError(t, err)
	require.Equal(t, "white", css.Get(theme, "colors.text"))

	description, err := loader.LoadStyle(ctx, writeFile(t, "style.yaml", formStyleYAML))
	require.NoError(t, err)
	require.Len(t, description, 4)

	require.Contains(t, buf.String(), "theme loaded")
	require.Contains(t, buf.String(), "style loaded")
}

func TestLoaderLogsFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	_, err = NewLoader(log).LoadTheme(context.Background(), writeFile(t, "theme.yaml", docsThemeYAML), "sepia")
	require.Error(t, err)
	require.Contains(t, buf.String(), "failed to apply color mode")
}

func TestLoaderHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(nil)
	_, err := loader.LoadTheme(ctx, "ignored.yaml", "")
	require.ErrorIs(t, err, context.Canceled)

	_, err = loader.LoadStyle(ctx, "ignored.yaml")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoaderWithoutLoggerIsSilent(t *testing.T) {
	t.Parallel()

	loader := NewLoader(nil)
	require.NotNil(t, loader.logger)

	theme, err := loader.LoadTheme(context.Background(), writeFile(t, "theme.yaml", docsThemeYAML), "")
	require.NoError(t, err)
	require.Equal(t, "black", css.Get(theme, "colors.text"))
}

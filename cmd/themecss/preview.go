package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themecss/internal/render"
)

const defaultPreviewText = "The quick brown fox jumps over the lazy dog"

type previewOptions struct {
	theme     themeSource
	stylePath string
	text      string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render sample text with a resolved style",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, opts)
		},
	}

	opts.theme.bind(cmd)
	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "Path to style file")
	cmd.Flags().StringVar(&opts.text, "text", defaultPreviewText, "Sample text to render")
	cmd.MarkFlagRequired("style") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts *previewOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	resolved, err := resolveFiles(cmd, app, opts.theme, opts.stylePath, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	backend := render.New(out)

	if ignored := backend.Unsupported(resolved); len(ignored) > 0 {
		app.log.Warn("properties without terminal equivalent", "properties", ignored)
	}

	preview := backend.Preview(resolved, opts.text)
	if width, ok := terminalWidth(out); ok {
		preview = lipgloss.NewStyle().MaxWidth(width).Render(preview)
	}

	_, err = fmt.Fprintln(out, preview)
	return err
}

// terminalWidth reports the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
	themeerrors "github.com/alexisbeaulieu97/themecss/pkg/errors"
)

type getOptions struct {
	theme    themeSource
	fallback string
	strict   bool
}

func newGetCmd(root *rootFlags) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Read a value from a theme by dot path",
		Long: "Read a value from a theme by dot path (for example colors.primary or space.3).\n" +
			"A missing path prints the fallback, or the path itself when no fallback is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, root, opts, args[0])
		},
	}

	opts.theme.bind(cmd)
	cmd.Flags().StringVar(&opts.fallback, "fallback", "", "Value printed when the path is missing")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when the path is missing")

	return cmd
}

func runGet(cmd *cobra.Command, root *rootFlags, opts *getOptions, path string) error {
	if err := opts.theme.validate(); err != nil {
		return newCommandError("get", "checking theme file", err, "Pass an existing YAML file with --theme, or use --preset.")
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	theme, err := app.loadTheme(cmd.Context(), opts.theme)
	if err != nil {
		return newCommandError("get", fmt.Sprintf("loading theme %s", opts.theme.label()), err, "Check the theme file against the documented format, or the preset and mode names.")
	}

	value, ok := css.Lookup(theme, path)
	if !ok {
		app.log.Debug("theme path missing", "path", path)
		switch {
		case opts.strict:
			return newCommandError("get", fmt.Sprintf("reading %s", path), themeerrors.NewLookupError(path), "Check the scale name and index, or drop --strict.")
		case cmd.Flags().Changed("fallback"):
			value = css.Get(theme, path, opts.fallback)
		default:
			value = css.Get(theme, path)
		}
	}

	return writeValue(cmd.OutOrStdout(), value)
}

// writeValue prints scalars bare and everything else as YAML.
func writeValue(w io.Writer, value any) error {
	switch v := value.(type) {
	case string, bool, int, int64, float64, css.Color:
		_, err := fmt.Fprintln(w, v)
		return err
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}
}

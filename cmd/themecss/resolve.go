package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

type resolveOptions struct {
	theme     themeSource
	stylePath string
	expand    bool
	format    string
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a style file against a theme and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, opts)
		},
	}

	opts.theme.bind(cmd)
	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "Path to style file")
	cmd.Flags().BoolVar(&opts.expand, "expand", false, "Expand shorthand properties (bg, mx, size, ...)")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "yaml", "Output format: yaml or json")
	cmd.MarkFlagRequired("style") //nolint:errcheck

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, opts *resolveOptions) error {
	if opts.format != "yaml" && opts.format != "json" {
		return newCommandError("resolve", "validating output format", fmt.Errorf("unknown format %q", opts.format), "Use --format yaml or --format json.")
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	resolved, err := resolveFiles(cmd, app, opts.theme, opts.stylePath, opts.expand)
	if err != nil {
		return err
	}

	return writeResolved(cmd.OutOrStdout(), resolved, opts.format)
}

// resolveFiles loads the theme and the style and resolves one against the other.
func resolveFiles(cmd *cobra.Command, app *appContext, src themeSource, stylePath string, expand bool) (css.Resolved, error) {
	if err := src.validate(); err != nil {
		return nil, newCommandError(cmd.Name(), "checking theme file", err, "Pass an existing YAML file with --theme, or use --preset.")
	}
	if err := validateInputPath("style", stylePath); err != nil {
		return nil, newCommandError(cmd.Name(), "checking style file", err, "Pass an existing YAML file with --style.")
	}

	ctx := cmd.Context()
	theme, err := app.loadTheme(ctx, src)
	if err != nil {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("loading theme %s", src.label()), err, "Check the theme file against the documented format, or the preset and mode names.")
	}
	description, err := app.loader.LoadStyle(ctx, stylePath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("loading style %s", stylePath), err, "Check the style file against the documented format.")
	}

	resolved := css.New(description)(theme)
	if expand {
		resolved = css.Expand(resolved)
	}
	app.log.Debug("style resolved", "theme", src.label(), "properties", len(resolved), "expanded", expand)
	return resolved, nil
}

func writeResolved(w io.Writer, resolved css.Resolved, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolved)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(resolved); err != nil {
		return err
	}
	return encoder.Close()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themecss/pkg/diff"
)

type diffOptions struct {
	theme       themeSource
	stylePath   string
	againstPath string
	againstMode string
	expand      bool
	exitCode    bool
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how a style resolves differently under two themes",
		Long: "Resolve one style file against two themes (or two color modes of one theme)\n" +
			"and print a unified diff of the results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, opts)
		},
	}

	opts.theme.bind(cmd)
	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "Path to style file")
	cmd.Flags().StringVarP(&opts.againstPath, "against", "a", "", "Theme file to compare with (defaults to the base theme)")
	cmd.Flags().StringVar(&opts.againstMode, "against-mode", "", "Color mode for the compared theme")
	cmd.Flags().BoolVar(&opts.expand, "expand", false, "Expand shorthand properties before comparing")
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Fail when the results differ")
	cmd.MarkFlagRequired("style") //nolint:errcheck

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, opts *diffOptions) error {
	base := opts.theme
	against := themeSource{path: opts.againstPath, mode: opts.againstMode}
	if against.path == "" {
		against.path = base.path
		against.preset = base.preset
	}
	if against.label() == base.label() {
		return newCommandError("diff", "comparing themes", fmt.Errorf("both sides use %s", base.label()), "Pass --against with another theme or --against-mode with another color mode.")
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	before, err := resolveFiles(cmd, app, base, opts.stylePath, opts.expand)
	if err != nil {
		return err
	}
	after, err := resolveFiles(cmd, app, against, opts.stylePath, opts.expand)
	if err != nil {
		return err
	}

	out, err := diff.Resolved(before, after, base.label(), against.label())
	if err != nil {
		return newCommandError("diff", "rendering diff", err, "Re-run with --verbose for details.")
	}

	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No differences")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if opts.exitCode {
		return newCommandError("diff", "comparing themes", fmt.Errorf("resolved styles differ"), "Drop --exit-code to only print the diff.")
	}
	return nil
}

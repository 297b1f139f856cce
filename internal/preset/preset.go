// Package preset ships the built-in themes: a Tailwind-style palette with light and
// dark color modes plus spacing, typography and border scales sized for terminals.
package preset

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

// Default is the name of the preset used when no theme file is given.
const Default = "default"

// Color mode names available on every preset.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

const shadeCount = 10

// shades holds one palette family ordered from the 50 shade to the 900 shade.
type shades [shadeCount]string

func (s shades) scale() []any {
	out := make([]any, shadeCount)
	for i, c := range s {
		out[i] = c
	}
	return out
}

// adaptive pairs the light and dark value of a semantic role.
type adaptive struct {
	light string
	dark  string
}

type definition struct {
	roles    map[string]adaptive
	families map[string]shades
	scales   func() css.Theme
}

var presets = map[string]definition{
	Default: {
		roles:    defaultRoles,
		families: defaultFamilies,
		scales:   defaultScales,
	},
}

var defaultRoles = map[string]adaptive{
	"text":       {light: "#111827", dark: "#f9fafb"},
	"background": {light: "#f9fafb", dark: "#111827"},
	"primary":    {light: "#3b82f6", dark: "#60a5fa"},
	"secondary":  {light: "#a855f7", dark: "#c084fc"},
	"muted":      {light: "#e2e8f0", dark: "#1f2937"},
	"highlight":  {light: "#facc15", dark: "#ca8a04"},
	"accent":     {light: "#f472b6", dark: "#f472b6"},
	"success":    {light: "#22c55e", dark: "#4ade80"},
	"warning":    {light: "#eab308", dark: "#facc15"},
	"danger":     {light: "#ef4444", dark: "#f87171"},
	"info":       {light: "#06b6d4", dark: "#22d3ee"},
	"neutral":    {light: "#64748b", dark: "#94a3b8"},
}

var defaultFamilies = map[string]shades{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"purple": {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"},
	"cyan":   {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"},
}

// defaultScales sizes space in pixels at eight pixels per terminal cell, so the
// steps land on whole cells: none, xs, sm, md, lg, xl, 2xl, 3xl, 4xl.
func defaultScales() css.Theme {
	return css.Theme{
		"space":     []any{0, 16, 24, 32, 40, 48, 56, 64, 72},
		"sizes":     []any{0, 80, 160, 320, 480, 640, 960},
		"fontSizes": []any{12, 14, 16, 18, 20, 24, 30},
		"fontWeights": map[string]any{
			"light":    300,
			"normal":   400,
			"medium":   500,
			"semibold": 600,
			"bold":     700,
		},
		"fonts": map[string]any{
			"body":      "system-ui, sans-serif",
			"heading":   "inherit",
			"monospace": "Menlo, monospace",
		},
		"lineHeights": map[string]any{
			"body":    1.5,
			"heading": 1.125,
		},
		"borders": map[string]any{
			"none":   "none",
			"normal": "1px solid",
			"thick":  "3px solid",
			"double": "3px double",
		},
		"borderWidths": []any{0, 1, 2, 3},
		"radii": map[string]any{
			"none": 0,
			"sm":   2,
			"md":   4,
			"lg":   8,
			"full": 9999,
		},
		"opacities": map[string]any{
			"faint": 0.4,
			"solid": 1,
		},
	}
}

// Names lists the available presets.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Theme builds a fresh copy of the named preset with the given color mode applied.
// An empty mode selects the light palette.
func Theme(name, mode string) (css.Theme, error) {
	def, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, Names())
	}

	theme := def.scales()
	colors := make(map[string]any, len(def.roles)+len(def.families))
	for family, s := range def.families {
		colors[family] = s.scale()
	}
	theme = theme.With("colors", colors)

	switch mode {
	case "", ModeLight:
		return theme.WithColorMode(def.mode(false)), nil
	case ModeDark:
		return theme.WithColorMode(def.mode(true)), nil
	default:
		return nil, fmt.Errorf("preset %q has no color mode %q (available: %s, %s)", name, mode, ModeLight, ModeDark)
	}
}

// Modes returns the color modes of the named preset keyed by mode name.
func Modes(name string) (map[string]css.ColorMode, bool) {
	def, ok := presets[name]
	if !ok {
		return nil, false
	}
	return map[string]css.ColorMode{
		ModeLight: def.mode(false),
		ModeDark:  def.mode(true),
	}, true
}

func (d definition) mode(dark bool) css.ColorMode {
	pick := func(role string) css.Color {
		a, ok := d.roles[role]
		if !ok {
			return css.Color{}
		}
		if dark {
			return css.SingleColor(a.dark)
		}
		return css.SingleColor(a.light)
	}

	mode := css.ColorMode{
		Text:       pick("text"),
		Background: pick("background"),
		Primary:    pick("primary"),
		Secondary:  pick("secondary"),
		Muted:      pick("muted"),
		Highlight:  pick("highlight"),
		Accent:     pick("accent"),
		Extra:      make(map[string]css.Color),
	}
	for role := range d.roles {
		if !isBaseRole(role) {
			mode.Extra[role] = pick(role)
		}
	}
	return mode
}

func isBaseRole(role string) bool {
	switch role {
	case "text", "background", "primary", "secondary", "muted", "highlight", "accent":
		return true
	default:
		return false
	}
}

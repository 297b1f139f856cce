// Package render is a terminal styling backend: it turns resolved styles into
// lipgloss styles. Lengths are converted to cells at 8px per cell; properties with
// no terminal equivalent are ignored.
package render

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

const pxPerCell = 8

// Backend renders resolved styles for one output.
type Backend struct {
	renderer *lipgloss.Renderer
}

// New returns a Backend whose color profile is detected from w. Writers that are not
// terminals get plain output.
func New(w io.Writer) *Backend {
	return &Backend{renderer: lipgloss.NewRenderer(w)}
}

// Style converts the top-level properties of r into a lipgloss style. Selector blocks
// are skipped; shorthands are expanded first.
func (b *Backend) Style(r css.Resolved) lipgloss.Style {
	expanded := css.Expand(r)
	style := b.renderer.NewStyle()

	for _, key := range sortedKeys(expanded) {
		value := expanded[key]
		if isBlock(value) {
			continue
		}
		if apply, ok := properties[key]; ok {
			style = apply(style, value)
		}
	}
	return applyBorder(style, expanded)
}

// Unsupported lists the top-level properties of r that the backend ignores.
func (b *Backend) Unsupported(r css.Resolved) []string {
	expanded := css.Expand(r)
	var ignored []string
	for _, key := range sortedKeys(expanded) {
		if isBlock(expanded[key]) {
			continue
		}
		if _, ok := properties[key]; ok {
			continue
		}
		if _, ok := borderProperties[key]; ok {
			continue
		}
		ignored = append(ignored, key)
	}
	return ignored
}

// Preview renders text with the top-level style, then once per selector block
// (recursively) under a faint selector label.
func (b *Backend) Preview(r css.Resolved, text string) string {
	lines := []string{b.Style(r).Render(text)}
	return lipgloss.JoinVertical(lipgloss.Left, append(lines, b.previewBlocks(r, "", text)...)...)
}

func (b *Backend) previewBlocks(r css.Resolved, parent, text string) []string {
	label := b.renderer.NewStyle().Faint(true)

	var lines []string
	for _, key := range sortedKeys(r) {
		nested, ok := asResolved(r[key])
		if !ok {
			continue
		}
		selector := strings.TrimSpace(parent + " " + key)
		lines = append(lines, label.Render(selector), b.Style(nested).Render(text))
		lines = append(lines, b.previewBlocks(nested, selector, text)...)
	}
	return lines
}

type propertyFunc func(lipgloss.Style, any) lipgloss.Style

var properties = map[string]propertyFunc{
	"color":           colorProperty(lipgloss.Style.Foreground),
	"backgroundColor": colorProperty(lipgloss.Style.Background),

	"padding":       boxProperty(lipgloss.Style.Padding),
	"paddingTop":    cellProperty(lipgloss.Style.PaddingTop),
	"paddingRight":  cellProperty(lipgloss.Style.PaddingRight),
	"paddingBottom": cellProperty(lipgloss.Style.PaddingBottom),
	"paddingLeft":   cellProperty(lipgloss.Style.PaddingLeft),
	"margin":        boxProperty(lipgloss.Style.Margin),
	"marginTop":     cellProperty(lipgloss.Style.MarginTop),
	"marginRight":   cellProperty(lipgloss.Style.MarginRight),
	"marginBottom":  cellProperty(lipgloss.Style.MarginBottom),
	"marginLeft":    cellProperty(lipgloss.Style.MarginLeft),
	"width":         cellProperty(lipgloss.Style.Width),
	"height":        cellProperty(lipgloss.Style.Height),
	"maxWidth":      cellProperty(lipgloss.Style.MaxWidth),
	"maxHeight":     cellProperty(lipgloss.Style.MaxHeight),

	"fontWeight": func(s lipgloss.Style, v any) lipgloss.Style {
		switch w := strings.ToLower(fmt.Sprint(v)); w {
		case "bold", "bolder":
			return s.Bold(true)
		case "normal", "lighter":
			return s.Bold(false)
		default:
			n, err := strconv.Atoi(w)
			if err != nil {
				return s
			}
			return s.Bold(n >= 600)
		}
	},
	"fontStyle": func(s lipgloss.Style, v any) lipgloss.Style {
		style := strings.ToLower(fmt.Sprint(v))
		return s.Italic(style == "italic" || style == "oblique")
	},
	"textDecoration":     decorationProperty,
	"textDecorationLine": decorationProperty,
	"textAlign": func(s lipgloss.Style, v any) lipgloss.Style {
		switch strings.ToLower(fmt.Sprint(v)) {
		case "center":
			return s.Align(lipgloss.Center)
		case "right", "end":
			return s.Align(lipgloss.Right)
		case "left", "start":
			return s.Align(lipgloss.Left)
		default:
			return s
		}
	},
	"opacity": func(s lipgloss.Style, v any) lipgloss.Style {
		f, ok := number(v)
		if !ok {
			return s
		}
		return s.Faint(f < 0.5)
	},
}

func colorProperty(set func(lipgloss.Style, lipgloss.TerminalColor) lipgloss.Style) propertyFunc {
	return func(s lipgloss.Style, v any) lipgloss.Style {
		c, ok := color(v)
		if !ok {
			return s
		}
		return set(s, c)
	}
}

func cellProperty(set func(lipgloss.Style, int) lipgloss.Style) propertyFunc {
	return func(s lipgloss.Style, v any) lipgloss.Style {
		n, ok := cells(v)
		if !ok {
			return s
		}
		return set(s, n)
	}
}

// boxProperty accepts CSS box shorthand: one to four lengths.
func boxProperty(set func(lipgloss.Style, ...int) lipgloss.Style) propertyFunc {
	return func(s lipgloss.Style, v any) lipgloss.Style {
		parts := strings.Fields(fmt.Sprint(v))
		if len(parts) == 0 || len(parts) > 4 {
			return s
		}
		values := make([]int, 0, len(parts))
		for _, part := range parts {
			n, ok := cells(part)
			if !ok {
				return s
			}
			values = append(values, n)
		}
		return set(s, values...)
	}
}

func decorationProperty(s lipgloss.Style, v any) lipgloss.Style {
	for _, token := range strings.Fields(strings.ToLower(fmt.Sprint(v))) {
		switch token {
		case "underline":
			s = s.Underline(true)
		case "line-through":
			s = s.Strikethrough(true)
		case "none":
			s = s.Underline(false).Strikethrough(false)
		}
	}
	return s
}

func color(v any) (lipgloss.TerminalColor, bool) {
	switch c := v.(type) {
	case string:
		if c == "" || c == "transparent" || c == "inherit" || c == "currentColor" {
			return nil, false
		}
		return lipgloss.Color(c), true
	case int, int64, float64:
		return lipgloss.Color(fmt.Sprint(c)), true
	default:
		return nil, false
	}
}

// cells converts a length to terminal cells. Bare numbers and px are pixels, ch is
// already a cell count; anything else (%, em, auto) is not convertible.
func cells(v any) (int, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasSuffix(s, "ch"):
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, "ch"), 64)
			if err != nil || n < 0 {
				return 0, false
			}
			return int(math.Round(n)), true
		case strings.HasSuffix(s, "px"):
			s = strings.TrimSuffix(s, "px")
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return pixelsToCells(n)
	}

	n, ok := number(v)
	if !ok {
		return 0, false
	}
	return pixelsToCells(n)
}

func pixelsToCells(px float64) (int, bool) {
	if px < 0 {
		return 0, false
	}
	return int(math.Round(px / pxPerCell)), true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isBlock(v any) bool {
	_, ok := asResolved(v)
	return ok
}

func asResolved(v any) (css.Resolved, bool) {
	switch m := v.(type) {
	case css.Resolved:
		return m, true
	case map[string]any:
		return css.Resolved(m), true
	default:
		return nil, false
	}
}

func sortedKeys(r css.Resolved) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

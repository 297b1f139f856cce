package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

var borderProperties = map[string]struct{}{
	"border":       {},
	"borderStyle":  {},
	"borderWidth":  {},
	"borderColor":  {},
	"borderRadius": {},
}

// applyBorder reads the border family as a whole: the shorthand first, then the
// longhand properties, then radius (which rounds a normal border).
func applyBorder(s lipgloss.Style, r css.Resolved) lipgloss.Style {
	var (
		kind  string
		width int
		paint lipgloss.TerminalColor
	)

	if v, ok := r["border"]; ok {
		for _, token := range strings.Fields(strings.ToLower(fmt.Sprint(v))) {
			if isBorderStyle(token) {
				kind = token
				continue
			}
			if n, ok := borderWidth(token); ok {
				width = n
				continue
			}
			if c, ok := color(token); ok {
				paint = c
			}
		}
	}
	if v, ok := r["borderStyle"]; ok {
		if token := strings.ToLower(fmt.Sprint(v)); isBorderStyle(token) {
			kind = token
		}
	}
	if v, ok := r["borderWidth"]; ok {
		if n, ok := borderWidth(fmt.Sprint(v)); ok {
			width = n
		}
	}
	if v, ok := r["borderColor"]; ok {
		if c, ok := color(v); ok {
			paint = c
		}
	}

	switch {
	case kind == "", kind == "none", kind == "hidden":
		return s
	case hasZeroWidth(r):
		return s
	}

	border := lipgloss.NormalBorder()
	switch {
	case kind == "double":
		border = lipgloss.DoubleBorder()
	case width >= 3:
		border = lipgloss.ThickBorder()
	case hasRadius(r):
		border = lipgloss.RoundedBorder()
	}

	s = s.Border(border)
	if paint != nil {
		s = s.BorderForeground(paint)
	}
	return s
}

func isBorderStyle(token string) bool {
	switch token {
	case "solid", "double", "dashed", "dotted", "groove", "ridge", "inset", "outset", "none", "hidden":
		return true
	default:
		return false
	}
}

func borderWidth(token string) (int, bool) {
	switch token {
	case "thin":
		return 1, true
	case "medium":
		return 2, true
	case "thick":
		return 3, true
	}
	trimmed := strings.TrimSuffix(token, "px")
	n, ok := number(trimmed)
	if !ok || n < 0 {
		return 0, false
	}
	return int(n), true
}

func hasZeroWidth(r css.Resolved) bool {
	for _, key := range []string{"border", "borderWidth"} {
		v, ok := r[key]
		if !ok {
			continue
		}
		for _, token := range strings.Fields(fmt.Sprint(v)) {
			if n, ok := borderWidth(token); ok && n == 0 {
				return true
			}
		}
	}
	return false
}

func hasRadius(r css.Resolved) bool {
	v, ok := r["borderRadius"]
	if !ok {
		return false
	}
	if n, ok := number(strings.TrimSuffix(fmt.Sprint(v), "px")); ok {
		return n > 0
	}
	return true
}

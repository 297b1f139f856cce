package css

// Theme is an open mapping from scale names (colors, space, fontSizes, ...) to scales.
// Scales are sequences addressed by index or mappings addressed by key. Any other
// top-level key may hold arbitrary nested data.
type Theme map[string]any

// Scale returns the named top-level entry of the theme.
func (t Theme) Scale(name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	scale, ok := t[name]
	if !ok || scale == nil {
		return nil, false
	}
	return scale, true
}

// With returns a shallow copy of the theme with the given scale replaced.
func (t Theme) With(name string, scale any) Theme {
	next := make(Theme, len(t)+1)
	for k, v := range t {
		next[k] = v
	}
	next[name] = scale
	return next
}

// WithColorMode returns a copy of the theme whose colors scale is overlaid with the
// roles defined by mode. Existing colors not named by the mode are kept. A colors
// scale that is not a mapping (for example a sequence) is replaced by the mode roles.
func (t Theme) WithColorMode(mode ColorMode) Theme {
	colors := make(map[string]any)
	if existing, ok := t.Scale("colors"); ok {
		if m, ok := asStringMap(existing); ok {
			for k, v := range m {
				colors[k] = v
			}
		}
	}
	for k, v := range mode.Scale() {
		colors[k] = v
	}
	return t.With("colors", colors)
}

func asStringMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case Theme:
		return m, true
	case Resolved:
		return m, true
	default:
		return nil, false
	}
}

package css

import (
	"reflect"
	"strconv"
	"strings"
)

// Get walks theme along the dot-delimited path and returns the value found at the
// last segment. Segments index mappings by key and sequences by position.
//
// If any segment is missing, Get returns fallback[0] when supplied and the path
// itself otherwise, so a themable value degrades to its literal form.
//
//	css.Get(css.Theme{"space": []any{0, 8, 16, 32}}, "space.3") // 32
//	css.Get(css.Theme{}, "space.3")                            // "space.3"
func Get(theme Theme, path string, fallback ...any) any {
	if value, ok := lookupPath(theme, path); ok {
		return value
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return path
}

// Lookup is Get without the fallback: it reports whether path resolved.
func Lookup(theme Theme, path string) (any, bool) {
	return lookupPath(theme, path)
}

func lookupPath(root any, path string) (any, bool) {
	current := root
	for _, segment := range strings.Split(path, ".") {
		next, ok := index(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// index reads a single key from a mapping or sequence. A stored nil counts as missing.
func index(container any, key string) (any, bool) {
	var (
		value any
		ok    bool
	)

	switch c := container.(type) {
	case nil:
		return nil, false
	case Theme:
		value, ok = c[key]
	case Resolved:
		value, ok = c[key]
	case map[string]any:
		value, ok = c[key]
	case map[string]string:
		value, ok = c[key]
	case []any:
		value, ok = element(c, key)
	case []string:
		value, ok = element(c, key)
	case []int:
		value, ok = element(c, key)
	case []float64:
		value, ok = element(c, key)
	case Color:
		if !c.IsScale() {
			return nil, false
		}
		value, ok = element(c.shades, key)
	default:
		value, ok = reflectIndex(reflect.ValueOf(container), key)
	}

	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func element[T any](seq []T, key string) (any, bool) {
	i, ok := parseIndex(key)
	if !ok || i >= len(seq) {
		return nil, false
	}
	return seq[i], true
}

func reflectIndex(v reflect.Value, key string) (any, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		item := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil, false
		}
		return item.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := parseIndex(key)
		if !ok || i >= v.Len() {
			return nil, false
		}
		return v.Index(i).Interface(), true
	default:
		return nil, false
	}
}

// parseIndex accepts canonical non-negative integers only: "0", "3", "12".
// "+1", "01" and "-1" are property names, not positions.
func parseIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return i, true
}

package css

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Resolved is the theme-free output of a Resolver: property names mapped to literal
// values or nested Resolved blocks.
type Resolved map[string]any

// Resolver turns a compiled description into a Resolved style for one theme.
type Resolver func(Theme) Resolved

// New compiles a description. The returned Resolver is pure and safe for concurrent
// use; every call returns a fresh map. d is never modified.
func New(d Description) Resolver {
	return func(theme Theme) Resolved {
		return resolveBlock(d, theme)
	}
}

// Resolve is shorthand for New(d)(theme).
func Resolve(d Description, theme Theme) Resolved {
	return resolveBlock(d, theme)
}

// Description converts r back into a literal-only description. Resolving it again
// against the same theme yields r unchanged as long as r holds no scale keys.
func (r Resolved) Description() Description {
	return FromMap(r)
}

func resolveBlock(d Description, theme Theme) Resolved {
	out := make(Resolved, len(d))
	for key, value := range d {
		for value.kind == KindFunc {
			value = ValueOf(value.fn(theme))
		}

		if value.kind == KindBlock {
			out[key] = resolveBlock(value.block, theme)
			continue
		}
		out[key] = resolveLiteral(key, value.lit, theme)
	}
	return out
}

func resolveLiteral(prop string, literal any, theme Theme) any {
	name, ok := ScaleFor(prop)
	if !ok {
		return literal
	}
	scale, ok := theme.Scale(name)
	if !ok {
		return literal
	}

	if found, ok := lookupScale(scale, literal); ok {
		if found, ok := scalar(found); ok {
			return found
		}
	}
	if negatable(prop) {
		if negated, ok := negate(scale, literal); ok {
			return negated
		}
	}
	return literal
}

// lookupScale uses a literal as a key into a scale. Strings may be dotted paths
// ("gray.5"); numbers are a single key in their canonical form.
func lookupScale(scale, literal any) (any, bool) {
	switch v := literal.(type) {
	case string:
		return lookupPath(scale, v)
	case int:
		return index(scale, strconv.Itoa(v))
	case int8, int16, int32, int64:
		return index(scale, strconv.FormatInt(reflect.ValueOf(v).Int(), 10))
	case uint, uint8, uint16, uint32, uint64:
		return index(scale, strconv.FormatUint(reflect.ValueOf(v).Uint(), 10))
	case float32:
		return index(scale, strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return index(scale, strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return nil, false
	}
}

// negate resolves -n or "-key" through the positive counterpart.
func negate(scale, literal any) (any, bool) {
	var positive any
	switch v := literal.(type) {
	case string:
		if !strings.HasPrefix(v, "-") || len(v) == 1 {
			return nil, false
		}
		positive = v[1:]
	default:
		n, ok := toFloat(literal)
		if !ok || n >= 0 || n != math.Trunc(n) {
			return nil, false
		}
		positive = int64(-n)
	}

	found, ok := lookupScale(scale, positive)
	if !ok {
		return nil, false
	}
	found, ok = scalar(found)
	if !ok {
		return nil, false
	}
	if s, ok := found.(string); ok {
		return "-" + s, true
	}
	return negateNumber(found)
}

func negateNumber(v any) (any, bool) {
	switch n := v.(type) {
	case int:
		return -n, true
	case int64:
		return -n, true
	case int32:
		return -n, true
	case float64:
		return -n, true
	case float32:
		return -n, true
	case uint, uint8, uint16, uint32, uint64:
		return -int64(reflect.ValueOf(v).Uint()), true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// scalar unwraps a Color hit to its plain value and reports whether the result can
// replace a literal. A shade scale stays a sequence and is not substituted.
func scalar(v any) (any, bool) {
	if c, ok := v.(Color); ok {
		v = c.Value()
	}
	return v, isScalar(v)
}

// isScalar reports whether a theme entry can stand in for a literal. Whole
// sub-mappings and sequences are not substituted.
func isScalar(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case string, bool, int, int64, float64:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Func, reflect.Struct, reflect.Chan:
		return false
	default:
		return true
	}
}

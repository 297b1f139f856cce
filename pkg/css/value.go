package css

import (
	"fmt"
	"reflect"
)

// Kind tags the three shapes a style value can take.
type Kind int

const (
	// KindLiteral is a plain value (string, number, ...) used as-is or looked up in a scale.
	KindLiteral Kind = iota
	// KindFunc is computed from the theme at resolution time.
	KindFunc
	// KindBlock is a nested selector block such as "> form" or ":hover".
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindFunc:
		return "func"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ComputeFunc derives a style value from the theme. The result may be a literal, a
// nested mapping, or another Value.
type ComputeFunc func(Theme) any

// Value is one entry of a Description.
type Value struct {
	kind  Kind
	lit   any
	fn    ComputeFunc
	block Description
}

// Description maps CSS-like property names and selectors to style values.
type Description map[string]Value

// Lit wraps a literal value.
func Lit(v any) Value {
	return Value{kind: KindLiteral, lit: v}
}

// Func wraps a computed value. A nil fn is treated as a nil literal.
func Func(fn ComputeFunc) Value {
	if fn == nil {
		return Lit(nil)
	}
	return Value{kind: KindFunc, fn: fn}
}

// Block wraps a nested selector block.
func Block(d Description) Value {
	return Value{kind: KindBlock, block: d}
}

// Kind reports the tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Literal returns the literal payload; nil for funcs and blocks.
func (v Value) Literal() any {
	return v.lit
}

// Nested returns the block payload; nil for literals and funcs.
func (v Value) Nested() Description {
	return v.block
}

// ValueOf tags an untyped value. Nested maps of any key type become blocks, functions
// of the theme become computed values and everything else is a literal.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case Description:
		return Block(x)
	case ComputeFunc:
		return Func(x)
	case func(Theme) any:
		return Func(x)
	case Resolved:
		return Block(FromMap(x))
	case map[string]any:
		return Block(FromMap(x))
	default:
		if d, ok := mapDescription(v); ok {
			return Block(d)
		}
		return Lit(v)
	}
}

// mapDescription converts other map shapes, such as map[string]string or the
// map[any]any yaml.v3 produces for non-string keys, into a Description. Keys are
// formatted with fmt so "0" in a @keyframes block stays addressable.
func mapDescription(v any) (Description, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	d := make(Description, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		for key.Kind() == reflect.Interface && !key.IsNil() {
			key = key.Elem()
		}

		var name string
		if key.Kind() == reflect.String {
			name = key.String()
		} else {
			name = fmt.Sprint(key.Interface())
		}
		d[name] = ValueOf(iter.Value().Interface())
	}
	return d, true
}

// FromMap converts decoded data, such as a YAML document, into a Description.
func FromMap(m map[string]any) Description {
	d := make(Description, len(m))
	for k, v := range m {
		d[k] = ValueOf(v)
	}
	return d
}

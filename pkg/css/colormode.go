package css

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Color is either a single color or a light → dark sequence of shades, where index 0
// is the lightest.
type Color struct {
	value  string
	shades []string
}

// SingleColor returns a Color holding one value.
func SingleColor(value string) Color {
	return Color{value: value}
}

// ColorScale returns a Color holding shades ordered from lightest to darkest.
func ColorScale(shades ...string) Color {
	return Color{shades: append([]string(nil), shades...)}
}

// IsScale reports whether c holds a sequence of shades.
func (c Color) IsScale() bool {
	return c.shades != nil
}

// IsZero reports whether c holds nothing.
func (c Color) IsZero() bool {
	return c.value == "" && len(c.shades) == 0
}

// String returns the single value, or the first shade of a scale.
func (c Color) String() string {
	if c.IsScale() {
		if len(c.shades) == 0 {
			return ""
		}
		return c.shades[0]
	}
	return c.value
}

// Shade returns the shade at index i. A single color answers every index with itself.
func (c Color) Shade(i int) (string, bool) {
	if !c.IsScale() {
		return c.value, c.value != ""
	}
	if i < 0 || i >= len(c.shades) {
		return "", false
	}
	return c.shades[i], true
}

// Shades destructures the first three positions as light, medium and dark.
// Missing positions are empty.
func (c Color) Shades() (light, medium, dark string) {
	light, _ = c.Shade(0)
	medium, _ = c.Shade(1)
	dark, _ = c.Shade(2)
	return light, medium, dark
}

// Value returns the theme representation: a string or a []string.
func (c Color) Value() any {
	if c.IsScale() {
		return append([]string(nil), c.shades...)
	}
	return c.value
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = SingleColor(node.Value)
		return nil
	case yaml.SequenceNode:
		shades := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: color shade must be a scalar", item.Line)
			}
			shades = append(shades, item.Value)
		}
		*c = ColorScale(shades...)
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a list of strings", node.Line)
	}
}

// MarshalYAML writes a single color as a scalar and a scale as a sequence.
func (c Color) MarshalYAML() (any, error) {
	return c.Value(), nil
}

var baseRoles = []string{"text", "background", "primary", "secondary", "muted", "highlight", "accent"}

func isBaseRole(name string) bool {
	for _, role := range baseRoles {
		if role == name {
			return true
		}
	}
	return false
}

// ColorMode is a palette keyed by semantic role. The well-known roles are fields;
// any other role lives in Extra.
type ColorMode struct {
	Text       Color            `yaml:"text,omitempty"`
	Background Color            `yaml:"background,omitempty"`
	Primary    Color            `yaml:"primary,omitempty"`
	Secondary  Color            `yaml:"secondary,omitempty"`
	Muted      Color            `yaml:"muted,omitempty"`
	Highlight  Color            `yaml:"highlight,omitempty"`
	Accent     Color            `yaml:"accent,omitempty"`
	Extra      map[string]Color `yaml:",inline"`
}

// Role returns the color stored under name, looking at well-known roles first.
func (m ColorMode) Role(name string) (Color, bool) {
	var c Color
	switch name {
	case "text":
		c = m.Text
	case "background":
		c = m.Background
	case "primary":
		c = m.Primary
	case "secondary":
		c = m.Secondary
	case "muted":
		c = m.Muted
	case "highlight":
		c = m.Highlight
	case "accent":
		c = m.Accent
	default:
		c = m.Extra[name]
	}
	return c, !c.IsZero()
}

// Roles lists the names of every role that holds a color, sorted.
func (m ColorMode) Roles() []string {
	roles := make([]string, 0, len(baseRoles)+len(m.Extra))
	for _, name := range baseRoles {
		if _, ok := m.Role(name); ok {
			roles = append(roles, name)
		}
	}
	for name, c := range m.Extra {
		if isBaseRole(name) || c.IsZero() {
			continue
		}
		roles = append(roles, name)
	}
	sort.Strings(roles)
	return roles
}

// Scale converts the mode into a colors scale usable in a Theme.
func (m ColorMode) Scale() map[string]any {
	scale := make(map[string]any)
	for _, name := range m.Roles() {
		c, _ := m.Role(name)
		scale[name] = c.Value()
	}
	return scale
}

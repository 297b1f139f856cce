package css

import "sort"

// Expand rewrites shorthand keys into the CSS properties a styling backend expects:
// aliases are renamed (bg → backgroundColor) and multiples are split
// (mx → marginLeft, marginRight; size → width, height). Nested blocks are expanded
// recursively and unknown keys are kept. When a shorthand and an explicit long-form
// key target the same property, the explicit key wins. r is not modified.
func Expand(r Resolved) Resolved {
	out := make(Resolved, len(r))

	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	explicit := make(map[string]any)
	for _, key := range keys {
		value := r[key]
		if nested, ok := asStringMap(value); ok {
			out[key] = Expand(Resolved(nested))
			continue
		}

		long := Longhand(key)
		targets, isMultiple := multiples[long]
		switch {
		case isMultiple:
			for _, target := range targets {
				out[target] = value
			}
		case long != key:
			out[long] = value
		default:
			explicit[key] = value
		}
	}

	for key, value := range explicit {
		out[key] = value
	}
	return out
}

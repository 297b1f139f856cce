// Package css resolves theme-aware style descriptions into plain style maps.
//
// # Overview
//
// A style description mixes three kinds of values: literals, computed values that
// read from the theme, and nested selector blocks. New compiles a description into a
// Resolver which can be called once per theme:
//
//	resolve := css.New(css.Description{
//		"bg":    css.Lit("primary"),
//		"p":     css.Func(func(t css.Theme) any { return css.Get(t, "sizes.5") }),
//		"> form": css.Block(css.Description{
//			"color": css.Lit("text"),
//		}),
//	})
//	style := resolve(theme)
//
// # Themes
//
// A Theme is an open map of named scales. A scale is either a sequence addressed by
// index or a mapping addressed by name. Get walks a dotted path through a theme and
// falls back to the path itself (or an explicit fallback) when any segment is missing.
//
// # Themable properties
//
// Keys listed in the scale table (color, bg, m, p, fontSize, ...) have their literal
// values looked up in the matching theme scale. Unknown keys, missing scales and
// failed lookups leave the literal untouched. Resolution never fails.
//
// Descriptions must be finite and acyclic. A description that contains itself is not
// detected and recurses forever.
package css

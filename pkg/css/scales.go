package css

// aliases maps shorthand keys to the CSS property they stand for. Shorthands are
// checked before the scale table.
var aliases = map[string]string{
	"bg": "backgroundColor",
	"m":  "margin",
	"mt": "marginTop",
	"mr": "marginRight",
	"mb": "marginBottom",
	"ml": "marginLeft",
	"mx": "marginX",
	"my": "marginY",
	"p":  "padding",
	"pt": "paddingTop",
	"pr": "paddingRight",
	"pb": "paddingBottom",
	"pl": "paddingLeft",
	"px": "paddingX",
	"py": "paddingY",
}

// multiples lists properties that stand for several CSS properties at once.
var multiples = map[string][]string{
	"marginX":        {"marginLeft", "marginRight"},
	"marginY":        {"marginTop", "marginBottom"},
	"paddingX":       {"paddingLeft", "paddingRight"},
	"paddingY":       {"paddingTop", "paddingBottom"},
	"scrollMarginX":  {"scrollMarginLeft", "scrollMarginRight"},
	"scrollMarginY":  {"scrollMarginTop", "scrollMarginBottom"},
	"scrollPaddingX": {"scrollPaddingLeft", "scrollPaddingRight"},
	"scrollPaddingY": {"scrollPaddingTop", "scrollPaddingBottom"},
	"size":           {"width", "height"},
}

// scales maps CSS properties to the theme scale their values are looked up in.
var scales = map[string]string{
	"color":               "colors",
	"backgroundColor":     "colors",
	"borderColor":         "colors",
	"caretColor":          "colors",
	"columnRuleColor":     "colors",
	"outlineColor":        "colors",
	"textDecorationColor": "colors",
	"accentColor":         "colors",
	"fill":                "colors",
	"stroke":              "colors",
	"borderTopColor":      "colors",
	"borderBottomColor":   "colors",
	"borderLeftColor":     "colors",
	"borderRightColor":    "colors",
	"borderBlockColor":    "colors",
	"borderInlineColor":   "colors",

	"opacity":    "opacities",
	"transition": "transitions",

	"margin":              "space",
	"marginTop":           "space",
	"marginRight":         "space",
	"marginBottom":        "space",
	"marginLeft":          "space",
	"marginX":             "space",
	"marginY":             "space",
	"marginBlock":         "space",
	"marginBlockEnd":      "space",
	"marginBlockStart":    "space",
	"marginInline":        "space",
	"marginInlineEnd":     "space",
	"marginInlineStart":   "space",
	"padding":             "space",
	"paddingTop":          "space",
	"paddingRight":        "space",
	"paddingBottom":       "space",
	"paddingLeft":         "space",
	"paddingX":            "space",
	"paddingY":            "space",
	"paddingBlock":        "space",
	"paddingBlockEnd":     "space",
	"paddingBlockStart":   "space",
	"paddingInline":       "space",
	"paddingInlineEnd":    "space",
	"paddingInlineStart":  "space",
	"scrollMargin":        "space",
	"scrollMarginTop":     "space",
	"scrollMarginRight":   "space",
	"scrollMarginBottom":  "space",
	"scrollMarginLeft":    "space",
	"scrollMarginX":       "space",
	"scrollMarginY":       "space",
	"scrollPadding":       "space",
	"scrollPaddingTop":    "space",
	"scrollPaddingRight":  "space",
	"scrollPaddingBottom": "space",
	"scrollPaddingLeft":   "space",
	"scrollPaddingX":      "space",
	"scrollPaddingY":      "space",
	"inset":               "space",
	"insetBlock":          "space",
	"insetBlockEnd":       "space",
	"insetBlockStart":     "space",
	"insetInline":         "space",
	"insetInlineEnd":      "space",
	"insetInlineStart":    "space",
	"top":                 "space",
	"right":               "space",
	"bottom":              "space",
	"left":                "space",
	"gridGap":             "space",
	"gridColumnGap":       "space",
	"gridRowGap":          "space",
	"gap":                 "space",
	"columnGap":           "space",
	"rowGap":              "space",

	"fontFamily":    "fonts",
	"fontSize":      "fontSizes",
	"fontWeight":    "fontWeights",
	"lineHeight":    "lineHeights",
	"letterSpacing": "letterSpacings",

	"border":            "borders",
	"borderTop":         "borders",
	"borderRight":       "borders",
	"borderBottom":      "borders",
	"borderLeft":        "borders",
	"borderBlock":       "borders",
	"borderBlockEnd":    "borders",
	"borderBlockStart":  "borders",
	"borderInline":      "borders",
	"borderInlineEnd":   "borders",
	"borderInlineStart": "borders",
	"outline":           "borders",

	"borderWidth":             "borderWidths",
	"borderTopWidth":          "borderWidths",
	"borderRightWidth":        "borderWidths",
	"borderBottomWidth":       "borderWidths",
	"borderLeftWidth":         "borderWidths",
	"borderBlockWidth":        "borderWidths",
	"borderInlineWidth":       "borderWidths",
	"columnRuleWidth":         "borderWidths",
	"borderStyle":             "borderStyles",
	"borderTopStyle":          "borderStyles",
	"borderRightStyle":        "borderStyles",
	"borderBottomStyle":       "borderStyles",
	"borderLeftStyle":         "borderStyles",
	"borderBlockStyle":        "borderStyles",
	"borderInlineStyle":       "borderStyles",
	"borderRadius":            "radii",
	"borderTopLeftRadius":     "radii",
	"borderTopRightRadius":    "radii",
	"borderBottomLeftRadius":  "radii",
	"borderBottomRightRadius": "radii",
	"borderStartStartRadius":  "radii",
	"borderStartEndRadius":    "radii",
	"borderEndStartRadius":    "radii",
	"borderEndEndRadius":      "radii",

	"boxShadow":  "shadows",
	"textShadow": "shadows",
	"zIndex":     "zIndices",

	"width":         "sizes",
	"minWidth":      "sizes",
	"maxWidth":      "sizes",
	"height":        "sizes",
	"minHeight":     "sizes",
	"maxHeight":     "sizes",
	"flexBasis":     "sizes",
	"size":          "sizes",
	"blockSize":     "sizes",
	"inlineSize":    "sizes",
	"minBlockSize":  "sizes",
	"maxBlockSize":  "sizes",
	"minInlineSize": "sizes",
	"maxInlineSize": "sizes",
}

// negative lists the space properties that accept -n / "-key" values.
var negative = map[string]struct{}{
	"margin":             {},
	"marginTop":          {},
	"marginRight":        {},
	"marginBottom":       {},
	"marginLeft":         {},
	"marginX":            {},
	"marginY":            {},
	"marginBlock":        {},
	"marginBlockEnd":     {},
	"marginBlockStart":   {},
	"marginInline":       {},
	"marginInlineEnd":    {},
	"marginInlineStart":  {},
	"scrollMargin":       {},
	"scrollMarginTop":    {},
	"scrollMarginRight":  {},
	"scrollMarginBottom": {},
	"scrollMarginLeft":   {},
	"scrollMarginX":      {},
	"scrollMarginY":      {},
	"top":                {},
	"right":              {},
	"bottom":             {},
	"left":               {},
	"inset":              {},
	"insetBlock":         {},
	"insetBlockEnd":      {},
	"insetBlockStart":    {},
	"insetInline":        {},
	"insetInlineEnd":     {},
	"insetInlineStart":   {},
}

// ScaleFor returns the theme scale a property's values are looked up in.
// Shorthands resolve through their long form: ScaleFor("bg") is "colors".
func ScaleFor(prop string) (string, bool) {
	scale, ok := scales[Longhand(prop)]
	return scale, ok
}

// Longhand returns the CSS property a shorthand key stands for, or prop unchanged.
func Longhand(prop string) string {
	if long, ok := aliases[prop]; ok {
		return long
	}
	return prop
}

func negatable(prop string) bool {
	_, ok := negative[Longhand(prop)]
	return ok
}

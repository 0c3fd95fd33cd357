package vellum

// Property identifies one style property in the closed property set.
// The set is fixed at compile time: the resolver guarantees every
// property has a concrete value on every resolved node.
type Property uint8

const (
	// Sizing
	PropWidth Property = iota
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight

	// Spacing
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropGap

	// Flex container and item
	PropDirection
	PropJustifyContent
	PropAlignItems
	PropAlignSelf
	PropFlexGrow
	PropFlexShrink

	// Paint
	PropBackground
	PropTextColor
	PropBorderColor
	PropBorderWidth
	PropCornerRadius
	PropOpacity
	PropElevation

	// Text
	PropFontFamily
	PropFontSize
	PropFontWeight
	PropTextAlign

	numProperties
)

var propertyNames = [numProperties]string{
	PropWidth:          "width",
	PropHeight:         "height",
	PropMinWidth:       "min-width",
	PropMinHeight:      "min-height",
	PropMaxWidth:       "max-width",
	PropMaxHeight:      "max-height",
	PropPaddingTop:     "padding-top",
	PropPaddingRight:   "padding-right",
	PropPaddingBottom:  "padding-bottom",
	PropPaddingLeft:    "padding-left",
	PropMarginTop:      "margin-top",
	PropMarginRight:    "margin-right",
	PropMarginBottom:   "margin-bottom",
	PropMarginLeft:     "margin-left",
	PropGap:            "gap",
	PropDirection:      "direction",
	PropJustifyContent: "justify-content",
	PropAlignItems:     "align-items",
	PropAlignSelf:      "align-self",
	PropFlexGrow:       "flex-grow",
	PropFlexShrink:     "flex-shrink",
	PropBackground:     "background",
	PropTextColor:      "text-color",
	PropBorderColor:    "border-color",
	PropBorderWidth:    "border-width",
	PropCornerRadius:   "corner-radius",
	PropOpacity:        "opacity",
	PropElevation:      "elevation",
	PropFontFamily:     "font-family",
	PropFontSize:       "font-size",
	PropFontWeight:     "font-weight",
	PropTextAlign:      "text-align",
}

// String returns the CSS-like property name.
func (p Property) String() string {
	if p < numProperties {
		return propertyNames[p]
	}
	return "unknown"
}

// PropertyByName returns the Property with the given CSS-like name.
// Used by the theme file loader.
func PropertyByName(name string) (Property, bool) {
	for p, n := range propertyNames {
		if n == name {
			return Property(p), true
		}
	}
	return 0, false
}

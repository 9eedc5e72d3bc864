package ir

import "fmt"

// Ptr returns a pointer to v; a convenience for populating the optional
// fields of Style and Layout literals.
func Ptr[T any](v T) *T { return &v }

// Style is the flat visual attribute record of a node. Every field is
// independently optional; nil fields are omitted from the wire form
// entirely rather than encoded as null.
type Style struct {
	// Dimensions
	Width     *Dimension
	Height    *Dimension
	MinWidth  *Dimension
	MaxWidth  *Dimension
	MinHeight *Dimension
	MaxHeight *Dimension

	// Colors
	BackgroundColor *Color
	Color           *Color
	BorderColor     *Color

	// Border
	BorderWidth  *float64
	BorderRadius *float64

	// Spacing
	Margin       *float64
	MarginTop    *float64
	MarginRight  *float64
	MarginBottom *float64
	MarginLeft   *float64

	Padding       *float64
	PaddingTop    *float64
	PaddingRight  *float64
	PaddingBottom *float64
	PaddingLeft   *float64

	// Typography
	FontSize   *float64
	FontFamily *string
	FontWeight *string
	FontStyle  *string
	LineHeight *float64
	TextAlign  *string

	// Display
	Visible  *bool
	Opacity  *float64
	Overflow *string

	// Flex
	FlexGrow   *float64
	FlexShrink *float64
	FlexBasis  *Dimension

	// Position
	Position *string
	X        *float64
	Y        *float64

	// Extra carries wire fields this record has no typed slot for, keyed by
	// internal name, so foreign documents round-trip losslessly.
	Extra map[string]any
}

// Layout is the flat positioning attribute record of a node.
type Layout struct {
	FlexDirection *string

	JustifyContent *string
	AlignItems     *string
	AlignContent   *string

	Gap       *float64
	RowGap    *float64
	ColumnGap *float64

	FlexWrap *string

	Top    *float64
	Right  *float64
	Bottom *float64
	Left   *float64

	// Extra carries unrecognized wire fields keyed by internal name.
	Extra map[string]any
}

// dimension wire form: {"value": "<text>"}
func dimWire(d *Dimension) map[string]any {
	return map[string]any{"value": d.String()}
}

// EncodeStyle converts the style to its wire map: camelCase keys, only
// present fields, dimensions as {"value": ...} objects and colors as text.
func (s *Style) EncodeStyle() map[string]any {
	m := make(map[string]any)

	putDim := func(key string, d *Dimension) {
		if d != nil {
			m[key] = dimWire(d)
		}
	}
	putColor := func(key string, c *Color) {
		if c != nil {
			m[key] = c.String()
		}
	}
	putFloat := func(key string, v *float64) {
		if v != nil {
			m[key] = *v
		}
	}
	putString := func(key string, v *string) {
		if v != nil {
			m[key] = *v
		}
	}

	putDim("width", s.Width)
	putDim("height", s.Height)
	putDim("minWidth", s.MinWidth)
	putDim("maxWidth", s.MaxWidth)
	putDim("minHeight", s.MinHeight)
	putDim("maxHeight", s.MaxHeight)

	putColor("backgroundColor", s.BackgroundColor)
	putColor("color", s.Color)
	putColor("borderColor", s.BorderColor)

	putFloat("borderWidth", s.BorderWidth)
	putFloat("borderRadius", s.BorderRadius)

	putFloat("margin", s.Margin)
	putFloat("marginTop", s.MarginTop)
	putFloat("marginRight", s.MarginRight)
	putFloat("marginBottom", s.MarginBottom)
	putFloat("marginLeft", s.MarginLeft)

	putFloat("padding", s.Padding)
	putFloat("paddingTop", s.PaddingTop)
	putFloat("paddingRight", s.PaddingRight)
	putFloat("paddingBottom", s.PaddingBottom)
	putFloat("paddingLeft", s.PaddingLeft)

	putFloat("fontSize", s.FontSize)
	putString("fontFamily", s.FontFamily)
	putString("fontWeight", s.FontWeight)
	putString("fontStyle", s.FontStyle)
	putFloat("lineHeight", s.LineHeight)
	putString("textAlign", s.TextAlign)

	if s.Visible != nil {
		m["visible"] = *s.Visible
	}
	putFloat("opacity", s.Opacity)
	putString("overflow", s.Overflow)

	putFloat("flexGrow", s.FlexGrow)
	putFloat("flexShrink", s.FlexShrink)
	putDim("flexBasis", s.FlexBasis)

	putString("position", s.Position)
	putFloat("x", s.X)
	putFloat("y", s.Y)

	for key, value := range s.Extra {
		m[EncodeKey(key)] = value
	}

	return m
}

// DecodeStyle rebuilds a Style from its wire map. Unknown fields land in
// Extra under internal keys; malformed dimension or color text is a
// FormatError (or ValidationError for bad hex lengths).
func DecodeStyle(wire map[string]any) (*Style, error) {
	s := &Style{}
	for wireKey, value := range wire {
		key := DecodeKey(wireKey)
		switch key {
		case "width", "height", "min_width", "max_width", "min_height", "max_height", "flex_basis":
			d := decodeDimValue(value)
			switch key {
			case "width":
				s.Width = &d
			case "height":
				s.Height = &d
			case "min_width":
				s.MinWidth = &d
			case "max_width":
				s.MaxWidth = &d
			case "min_height":
				s.MinHeight = &d
			case "max_height":
				s.MaxHeight = &d
			case "flex_basis":
				s.FlexBasis = &d
			}
		case "background_color", "color", "border_color":
			text, ok := value.(string)
			if !ok {
				return nil, &FormatError{Kind: "color", Input: stringify(value)}
			}
			c, err := ParseColor(text)
			if err != nil {
				return nil, err
			}
			switch key {
			case "background_color":
				s.BackgroundColor = &c
			case "color":
				s.Color = &c
			case "border_color":
				s.BorderColor = &c
			}
		case "border_width":
			s.BorderWidth = floatPtr(value)
		case "border_radius":
			s.BorderRadius = floatPtr(value)
		case "margin":
			s.Margin = floatPtr(value)
		case "margin_top":
			s.MarginTop = floatPtr(value)
		case "margin_right":
			s.MarginRight = floatPtr(value)
		case "margin_bottom":
			s.MarginBottom = floatPtr(value)
		case "margin_left":
			s.MarginLeft = floatPtr(value)
		case "padding":
			s.Padding = floatPtr(value)
		case "padding_top":
			s.PaddingTop = floatPtr(value)
		case "padding_right":
			s.PaddingRight = floatPtr(value)
		case "padding_bottom":
			s.PaddingBottom = floatPtr(value)
		case "padding_left":
			s.PaddingLeft = floatPtr(value)
		case "font_size":
			s.FontSize = floatPtr(value)
		case "font_family":
			s.FontFamily = stringPtr(value)
		case "font_weight":
			s.FontWeight = stringPtr(value)
		case "font_style":
			s.FontStyle = stringPtr(value)
		case "line_height":
			s.LineHeight = floatPtr(value)
		case "text_align":
			s.TextAlign = stringPtr(value)
		case "visible":
			if b, ok := value.(bool); ok {
				s.Visible = &b
			}
		case "opacity":
			s.Opacity = floatPtr(value)
		case "overflow":
			s.Overflow = stringPtr(value)
		case "flex_grow":
			s.FlexGrow = floatPtr(value)
		case "flex_shrink":
			s.FlexShrink = floatPtr(value)
		case "position":
			s.Position = stringPtr(value)
		case "x":
			s.X = floatPtr(value)
		case "y":
			s.Y = floatPtr(value)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]any)
			}
			s.Extra[key] = value
		}
	}
	return s, nil
}

// EncodeLayout converts the layout to its wire map.
func (l *Layout) EncodeLayout() map[string]any {
	m := make(map[string]any)

	putFloat := func(key string, v *float64) {
		if v != nil {
			m[key] = *v
		}
	}
	putString := func(key string, v *string) {
		if v != nil {
			m[key] = *v
		}
	}

	putString("flexDirection", l.FlexDirection)
	putString("justifyContent", l.JustifyContent)
	putString("alignItems", l.AlignItems)
	putString("alignContent", l.AlignContent)
	putFloat("gap", l.Gap)
	putFloat("rowGap", l.RowGap)
	putFloat("columnGap", l.ColumnGap)
	putString("flexWrap", l.FlexWrap)
	putFloat("top", l.Top)
	putFloat("right", l.Right)
	putFloat("bottom", l.Bottom)
	putFloat("left", l.Left)

	for key, value := range l.Extra {
		m[EncodeKey(key)] = value
	}

	return m
}

// DecodeLayout rebuilds a Layout from its wire map.
func DecodeLayout(wire map[string]any) *Layout {
	l := &Layout{}
	for wireKey, value := range wire {
		key := DecodeKey(wireKey)
		switch key {
		case "flex_direction":
			l.FlexDirection = stringPtr(value)
		case "justify_content":
			l.JustifyContent = stringPtr(value)
		case "align_items":
			l.AlignItems = stringPtr(value)
		case "align_content":
			l.AlignContent = stringPtr(value)
		case "gap":
			l.Gap = floatPtr(value)
		case "row_gap":
			l.RowGap = floatPtr(value)
		case "column_gap":
			l.ColumnGap = floatPtr(value)
		case "flex_wrap":
			l.FlexWrap = stringPtr(value)
		case "top":
			l.Top = floatPtr(value)
		case "right":
			l.Right = floatPtr(value)
		case "bottom":
			l.Bottom = floatPtr(value)
		case "left":
			l.Left = floatPtr(value)
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]any)
			}
			l.Extra[key] = value
		}
	}
	return l
}

// decodeDimValue accepts the {"value": "..."} wire object, a bare string,
// or a bare number (treated as pixels).
func decodeDimValue(value any) Dimension {
	switch v := value.(type) {
	case map[string]any:
		if text, ok := v["value"].(string); ok {
			return ParseDimension(text)
		}
		if num, ok := toFloat(v["value"]); ok {
			return Px(num)
		}
	case string:
		return ParseDimension(v)
	default:
		if num, ok := toFloat(value); ok {
			return Px(num)
		}
	}
	return Opaque(stringify(value))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	}
	return 0, false
}

func floatPtr(value any) *float64 {
	if v, ok := toFloat(value); ok {
		return &v
	}
	return nil
}

func stringPtr(value any) *string {
	if v, ok := value.(string); ok {
		return &v
	}
	return nil
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

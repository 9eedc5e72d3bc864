package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color with 8-bit channels and a 0..1 alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 1.0} }

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b uint8, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// ColorFromHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#'
// optional). Three-digit forms expand each digit; eight-digit forms carry
// alpha as the last byte over 255. Any other length is a ValidationError.
func ColorFromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6, 8:
		// as given
	default:
		return Color{}, &ValidationError{Field: "hex color", Input: s, Reason: "length must be 3, 6 or 8 hex digits"}
	}

	parse := func(b string) (uint8, error) {
		v, err := strconv.ParseUint(b, 16, 8)
		if err != nil {
			return 0, &FormatError{Kind: "color", Input: s}
		}
		return uint8(v), nil
	}

	var c Color
	var err error
	if c.R, err = parse(hex[0:2]); err != nil {
		return Color{}, err
	}
	if c.G, err = parse(hex[2:4]); err != nil {
		return Color{}, err
	}
	if c.B, err = parse(hex[4:6]); err != nil {
		return Color{}, err
	}
	c.A = 1.0
	if len(hex) == 8 {
		alpha, err := parse(hex[6:8])
		if err != nil {
			return Color{}, err
		}
		c.A = float64(alpha) / 255.0
	}
	return c, nil
}

// Hex renders the color as "#rrggbb", or "#rrggbbaa" when alpha is not 1.
func (c Color) Hex() string {
	if c.A == 1.0 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(c.A*255))
}

// String renders the wire form: a 6-digit hex string for opaque colors,
// "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	if c.A == 1.0 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatNumber(c.A))
}

// ParseColor parses any text the encoder can emit: hex forms via
// ColorFromHex plus "rgba(r, g, b, a)". Other text is a FormatError.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		body := strings.TrimSuffix(strings.TrimPrefix(s, "rgba("), ")")
		parts := strings.Split(body, ",")
		if len(parts) != 4 {
			return Color{}, &FormatError{Kind: "color", Input: s}
		}
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
			if err != nil {
				return Color{}, &FormatError{Kind: "color", Input: s}
			}
			channels[i] = uint8(v)
		}
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || alpha < 0 || alpha > 1 {
			return Color{}, &FormatError{Kind: "color", Input: s}
		}
		return RGBA(channels[0], channels[1], channels[2], alpha), nil
	}
	if strings.HasPrefix(s, "#") {
		return ColorFromHex(s)
	}
	return Color{}, &FormatError{Kind: "color", Input: s}
}

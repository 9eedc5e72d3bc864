package ir

import (
	"strconv"
	"strings"
)

// DimensionUnit discriminates the Dimension union.
type DimensionUnit uint8

const (
	UnitPx DimensionUnit = iota
	UnitPercent
	UnitAuto
	UnitOpaque // unrecognized text carried through verbatim
)

// Dimension is a CSS-style size value: auto, pixels, a percentage, or an
// opaque string this layer does not interpret.
type Dimension struct {
	Unit  DimensionUnit
	Value float64
	Raw   string // set only for UnitOpaque
}

// Px returns a pixel dimension.
func Px(v float64) Dimension { return Dimension{Unit: UnitPx, Value: v} }

// Pct returns a percentage dimension.
func Pct(v float64) Dimension { return Dimension{Unit: UnitPercent, Value: v} }

// Auto returns the auto dimension.
func Auto() Dimension { return Dimension{Unit: UnitAuto} }

// Opaque returns a passthrough dimension for text this layer cannot parse.
func Opaque(raw string) Dimension { return Dimension{Unit: UnitOpaque, Raw: raw} }

// String renders the dimension in its wire text form: "auto", "<n>%" or
// "<n>px". Whole numbers print without a fractional part. Opaque values
// render verbatim.
func (d Dimension) String() string {
	switch d.Unit {
	case UnitAuto:
		return "auto"
	case UnitPercent:
		return formatNumber(d.Value) + "%"
	case UnitOpaque:
		return d.Raw
	default:
		return formatNumber(d.Value) + "px"
	}
}

// ParseDimension is the textual inverse of String: a trailing "%" parses as
// a percentage, a trailing "px" as pixels, "auto" as auto, and any bare
// numeric text as pixels. Anything else is carried through as an opaque
// dimension rather than failing.
func ParseDimension(s string) Dimension {
	switch {
	case s == "auto":
		return Auto()
	case strings.HasSuffix(s, "%"):
		if v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err == nil {
			return Pct(v)
		}
	case strings.HasSuffix(s, "px"):
		if v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64); err == nil {
			return Px(v)
		}
	default:
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return Px(v)
		}
	}
	return Opaque(s)
}

// formatNumber prints an integer literal when v has no fractional part.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

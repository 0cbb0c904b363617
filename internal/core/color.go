package core

import (
	"strconv"
	"strings"
)

// Color is a tile or connector color. ColorNone means "no color" for a tile
// and "no connection" for a connector.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlue
	ColorRed
	ColorYellow
	ColorGreen
	ColorPurple
	ColorOrange
	ColorGray
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Valid reports whether the color is in range.
func (c Color) Valid() bool {
	return c < ColorCount
}

// Digit returns the color as a single decimal digit.
func (c Color) Digit() byte {
	return '0' + byte(c)
}

// ParseColor converts a name or a digit to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= int(ColorCount) {
			return ColorNone, false
		}
		return Color(n), true
	}
	for c := ColorNone; c < ColorCount; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return ColorNone, false
}

// AllColors returns every color including ColorNone.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := ColorNone; c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}

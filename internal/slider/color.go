package slider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with an alpha channel in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

var (
	// White is opaque white.
	White = Color{Color: colorful.Color{R: 1, G: 1, B: 1}, A: 1}
	// Black is opaque black.
	Black = Color{Color: colorful.Color{}, A: 1}
	// Clear is fully transparent.
	Clear = Color{}
)

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" and the names
// "clear", "white" and "black".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clear", "transparent":
		return Clear, nil
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}

	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		return Clear, fmt.Errorf("color %q: missing leading '#'", s)
	}
	digits := hex[1:]
	if len(digits) == 3 || len(digits) == 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	alpha := 1.0
	switch len(digits) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Clear, fmt.Errorf("color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	default:
		return Clear, fmt.Errorf("color %q: expected 3, 4, 6 or 8 hex digits", s)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Clear, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{Color: c, A: alpha}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithOpacity returns the color with its alpha replaced.
func (c Color) WithOpacity(a float64) Color {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.A = a
	return c
}

// IsClear reports whether the color is fully transparent.
func (c Color) IsClear() bool {
	return c.A <= 0
}

// Over composites the color onto an opaque background.
func (c Color) Over(bg colorful.Color) colorful.Color {
	if c.A >= 1 {
		return c.Color.Clamped()
	}
	if c.IsClear() {
		return bg
	}
	return bg.BlendRgb(c.Color, c.A).Clamped()
}

// String renders the color as "#rrggbb" or "#rrggbbaa" when translucent.
func (c Color) String() string {
	if c.IsClear() {
		return "clear"
	}
	if c.A >= 1 {
		return c.Color.Clamped().Hex()
	}
	return fmt.Sprintf("%s%02x", c.Color.Clamped().Hex(), uint8(c.A*255+0.5))
}

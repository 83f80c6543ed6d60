package console

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit color or the console default.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorDefault leaves the display's own color in place.
var ColorDefault = Color{}

// Common colors.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
)

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether c is ColorDefault.
func (c Color) IsDefault() bool {
	return !c.set
}

// String returns "default" or the "#rrggbb" form.
func (c Color) String() string {
	if !c.set {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rrggbb", "#rgb", a color name such as "red" or
// "darkslategray", or "default" / "" for ColorDefault.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "default") {
		return ColorDefault, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	tc := tcell.GetColor(strings.ToLower(s))
	if tc == tcell.ColorDefault {
		return ColorDefault, fmt.Errorf("unknown color name %q", s)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return ColorDefault, fmt.Errorf("color %q has no RGB value", s)
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// tcellColor converts c to a tcell color.
func (c Color) tcellColor() tcell.Color {
	if !c.set {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// styleFor builds the tcell style for a foreground / background pair.
func styleFor(fg, bg Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.tcellColor()).Background(bg.tcellColor())
}

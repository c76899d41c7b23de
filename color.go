package canvas2d

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// String serializes the color the way a canvas reports fillStyle:
// "#rrggbb" when opaque, "rgba(r, g, b, a)" otherwise.
func (c RGBA) String() string {
	if to8(c.A) == 255 {
		return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	}
	a := strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", to8(c.R), to8(c.G), to8(c.B), a)
}

// ParseColor parses a CSS color: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// "rgb(...)", "rgba(...)", "transparent", or a CSS named color.
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return RGBA{}, fmt.Errorf("empty color")
	case s[0] == '#':
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGBFunc(s)
	case s == "transparent":
		return Transparent, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return FromColor(named), nil
	}
	return RGBA{}, fmt.Errorf("unknown color %q", s)
}

// Hex creates a color from a hex string, with or without a leading '#'.
// Unparsable input yields opaque black.
func Hex(hex string) RGBA {
	c, err := parseHexColor(strings.TrimPrefix(hex, "#"))
	if err != nil {
		return Black
	}
	return c
}

func parseHexColor(hex string) (RGBA, error) {
	digits := make([]uint32, len(hex))
	for i := range len(hex) {
		v, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("bad hex color %q", hex)
		}
		digits[i] = v
	}

	var r, g, b uint32
	a := uint32(255)
	switch len(hex) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return RGBA{}, fmt.Errorf("bad hex color length %d", len(hex))
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// parseRGBFunc parses rgb()/rgba() with comma or space separated channels
// and an optional alpha (number or percentage).
func parseRGBFunc(s string) (RGBA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return RGBA{}, fmt.Errorf("unterminated color function %q", s)
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : len(s)-1])
	fields := strings.Fields(body)
	if len(fields) != 3 && len(fields) != 4 {
		return RGBA{}, fmt.Errorf("color function %q needs 3 or 4 components", s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, f := range fields {
		v, err := parseComponent(f, i == 3)
		if err != nil {
			return RGBA{}, fmt.Errorf("color function %q: %w", s, err)
		}
		ch[i] = v
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// parseComponent returns a channel in [0, 1]. Color channels are 0..255 or
// percentages; alpha is 0..1 or a percentage.
func parseComponent(f string, alpha bool) (float64, error) {
	percent := strings.HasSuffix(f, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
	if err != nil || !AllFinite(v) {
		return 0, fmt.Errorf("bad component %q", f)
	}
	switch {
	case percent:
		v /= 100
	case !alpha:
		v /= 255
	}
	return math.Max(0, math.Min(1, v)), nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

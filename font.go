package canvas2d

import (
	"fmt"
	"strconv"
	"strings"
)

// FontStyle is the slant of a font.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// Font weights commonly used in CSS font shorthands.
const (
	FontWeightNormal = 400
	FontWeightBold   = 700
)

// Font is a parsed CSS font shorthand.
type Font struct {
	Style  FontStyle
	Weight int
	// Size is the font size in CSS pixels.
	Size float64
	// Family is the comma separated family list with quotes removed.
	Family string
}

// DefaultFont is the canvas default, "10px sans-serif".
var DefaultFont = Font{Weight: FontWeightNormal, Size: 10, Family: "sans-serif"}

// Families returns the individual family names in preference order.
func (f Font) Families() []string {
	parts := strings.Split(f.Family, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Bold reports whether the weight is 600 or heavier.
func (f Font) Bold() bool {
	return f.Weight >= 600
}

// String serializes the font as a CSS shorthand.
func (f Font) String() string {
	var b strings.Builder
	switch f.Style {
	case FontStyleItalic:
		b.WriteString("italic ")
	case FontStyleOblique:
		b.WriteString("oblique ")
	}
	switch {
	case f.Weight == FontWeightBold:
		b.WriteString("bold ")
	case f.Weight != FontWeightNormal && f.Weight != 0:
		b.WriteString(strconv.Itoa(f.Weight) + " ")
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}

// ParseFont parses a CSS font shorthand such as "30px Arial" or
// "italic bold 12pt/1.5 'Go Mono', monospace". Size and family are
// required; sizes may be given in px, pt, em, rem or %, relative units
// resolving against 16px.
func ParseFont(s string) (Font, error) {
	f := Font{Weight: FontWeightNormal}
	fields := strings.Fields(s)
	for i, tok := range fields {
		lower := strings.ToLower(tok)
		switch lower {
		case "normal", "small-caps":
			continue
		case "italic":
			f.Style = FontStyleItalic
			continue
		case "oblique":
			f.Style = FontStyleOblique
			continue
		case "bold", "bolder":
			f.Weight = FontWeightBold
			continue
		case "lighter":
			f.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(lower); err == nil && w >= 1 && w <= 1000 {
			f.Weight = w
			continue
		}

		size, err := parseFontSize(lower)
		if err != nil {
			return Font{}, fmt.Errorf("font %q: %w", s, err)
		}
		f.Size = size
		family := normalizeFamilies(strings.Join(fields[i+1:], " "))
		if family == "" {
			return Font{}, fmt.Errorf("font %q: missing family", s)
		}
		f.Family = family
		return f, nil
	}
	return Font{}, fmt.Errorf("font %q: missing size", s)
}

var fontUnits = []struct {
	suffix   string
	num, den float64
}{
	{"rem", 16, 1},
	{"px", 1, 1},
	{"pt", 4, 3},
	{"em", 16, 1},
	{"%", 16, 100},
}

func parseFontSize(tok string) (float64, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	for _, u := range fontUnits {
		if !strings.HasSuffix(tok, u.suffix) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, u.suffix), 64)
		if err != nil || !AllFinite(v) || v <= 0 {
			return 0, fmt.Errorf("bad size %q", tok)
		}
		return v * u.num / u.den, nil
	}
	return 0, fmt.Errorf("unknown token %q", tok)
}

func normalizeFamilies(list string) string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

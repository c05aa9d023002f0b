package term

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"teal":    "#008080",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"crimson": "#dc143c",
	"coral":   "#ff7f50",
	"salmon":  "#fa8072",
	"tomato":  "#ff6347",
}

// ResolveColor converts a CSS color value to #rrggbb. Hex colors, the common
// CSS color names and rgb(r, g, b) are understood.
func ResolveColor(css string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(css))
	if v == "" {
		return "", false
	}
	if hex, ok := namedColors[v]; ok {
		return hex, true
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return "", false
		}
		return c.Hex(), true
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		parts := strings.Split(v[len("rgb("):len(v)-1], ",")
		if len(parts) != 3 {
			return "", false
		}
		var rgb [3]float64
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return "", false
			}
			rgb[i] = float64(n) / 255
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Hex(), true
	}
	return "", false
}

const (
	sgrBold      = "1"
	sgrItalic    = "3"
	sgrUnderline = "4"
	sgrReset     = "\x1b[0m"
)

// prefix returns the SGR sequence for s, or "" when s has no effect under
// profile.
func (s Style) prefix(profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return ""
	}
	var params []string
	if s.Bold {
		params = append(params, sgrBold)
	}
	if s.Italic {
		params = append(params, sgrItalic)
	}
	if s.Underline {
		params = append(params, sgrUnderline)
	}
	if hex, ok := ResolveColor(s.Color); ok {
		if c := profile.Color(hex); c != nil {
			if seq := c.Sequence(false); seq != "" {
				params = append(params, seq)
			}
		}
	}
	if len(params) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(params, ";") + "m"
}

// merge overlays the attributes of o on s. A color in o replaces the color
// of s.
func (s Style) merge(o Style) Style {
	s.Bold = s.Bold || o.Bold
	s.Italic = s.Italic || o.Italic
	s.Underline = s.Underline || o.Underline
	if o.Color != "" {
		s.Color = o.Color
	}
	return s
}

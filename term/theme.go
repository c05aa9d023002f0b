package term

import (
	"sort"
	"strings"
)

// Style describes how a run of text is printed.
type Style struct {
	// Color is a hex or CSS color name. Empty keeps the terminal default.
	Color     string
	Bold      bool
	Italic    bool
	Underline bool
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text     Style
	Strong   Style
	Emphasis Style
	LinkText Style
	LinkURL  Style
}

// Theme provides named styles for translation rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func stylesFromPalette(p Palette) Styles {
	return Styles{
		Text:     Style{Color: p.Text},
		Strong:   Style{Color: p.Strong, Bold: true},
		Emphasis: Style{Color: p.Emphasis, Italic: true},
		LinkText: Style{Color: p.LinkText, Underline: true},
		LinkURL:  Style{Color: p.LinkURL},
	}
}

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(PaletteDefault)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(PaletteDracula)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(PaletteNord)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(PaletteGruvbox)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(PaletteTokyoNight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(PaletteCatppuccinMocha)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(PaletteSolarizedDark)},
	"solarized-light":  theme{name: "solarized-light", styles: stylesFromPalette(PaletteSolarizedLight)},
	"github-dark":      theme{name: "github-dark", styles: stylesFromPalette(PaletteGithubDark)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(PaletteGithubLight)},
	"one-dark":         theme{name: "one-dark", styles: stylesFromPalette(PaletteOneDark)},
	"rose-pine":        theme{name: "rose-pine", styles: stylesFromPalette(PaletteRosePine)},
	"kanagawa":         theme{name: "kanagawa", styles: stylesFromPalette(PaletteKanagawa)},
	"everforest":       theme{name: "everforest", styles: stylesFromPalette(PaletteEverforest)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

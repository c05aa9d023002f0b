package term

// Palette holds the hex colors of a theme. Empty entries keep the terminal
// default color.
type Palette struct {
	Text     string
	Strong   string
	Emphasis string
	LinkText string
	LinkURL  string
}

var (
	PaletteDefault = Palette{
		LinkText: "#5fafff",
		LinkURL:  "#808080",
	}
	PaletteDracula = Palette{
		Text:     "#f8f8f2",
		Strong:   "#ff79c6",
		Emphasis: "#f1fa8c",
		LinkText: "#8be9fd",
		LinkURL:  "#6272a4",
	}
	PaletteNord = Palette{
		Text:     "#d8dee9",
		Strong:   "#88c0d0",
		Emphasis: "#b48ead",
		LinkText: "#81a1c1",
		LinkURL:  "#616e88",
	}
	PaletteGruvbox = Palette{
		Text:     "#ebdbb2",
		Strong:   "#fb4934",
		Emphasis: "#fabd2f",
		LinkText: "#83a598",
		LinkURL:  "#928374",
	}
	PaletteTokyoNight = Palette{
		Text:     "#c0caf5",
		Strong:   "#bb9af7",
		Emphasis: "#9ece6a",
		LinkText: "#7aa2f7",
		LinkURL:  "#565f89",
	}
	PaletteCatppuccinMocha = Palette{
		Text:     "#cdd6f4",
		Strong:   "#cba6f7",
		Emphasis: "#f5c2e7",
		LinkText: "#89b4fa",
		LinkURL:  "#6c7086",
	}
	PaletteSolarizedDark = Palette{
		Text:     "#839496",
		Strong:   "#cb4b16",
		Emphasis: "#b58900",
		LinkText: "#268bd2",
		LinkURL:  "#586e75",
	}
	PaletteSolarizedLight = Palette{
		Text:     "#657b83",
		Strong:   "#cb4b16",
		Emphasis: "#b58900",
		LinkText: "#268bd2",
		LinkURL:  "#93a1a1",
	}
	PaletteGithubDark = Palette{
		Text:     "#c9d1d9",
		Strong:   "#ff7b72",
		Emphasis: "#d2a8ff",
		LinkText: "#58a6ff",
		LinkURL:  "#8b949e",
	}
	PaletteGithubLight = Palette{
		Text:     "#24292f",
		Strong:   "#cf222e",
		Emphasis: "#8250df",
		LinkText: "#0969da",
		LinkURL:  "#6e7781",
	}
	PaletteOneDark = Palette{
		Text:     "#abb2bf",
		Strong:   "#e06c75",
		Emphasis: "#c678dd",
		LinkText: "#61afef",
		LinkURL:  "#5c6370",
	}
	PaletteRosePine = Palette{
		Text:     "#e0def4",
		Strong:   "#eb6f92",
		Emphasis: "#c4a7e7",
		LinkText: "#9ccfd8",
		LinkURL:  "#6e6a86",
	}
	PaletteKanagawa = Palette{
		Text:     "#dcd7ba",
		Strong:   "#e46876",
		Emphasis: "#957fb8",
		LinkText: "#7e9cd8",
		LinkURL:  "#727169",
	}
	PaletteEverforest = Palette{
		Text:     "#d3c6aa",
		Strong:   "#e67e80",
		Emphasis: "#d699b6",
		LinkText: "#7fbbb3",
		LinkURL:  "#859289",
	}
)

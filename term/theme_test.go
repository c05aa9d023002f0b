package term

import "testing"

func TestThemeByName(t *testing.T) {
	expected := []string{
		"default",
		"dracula",
		"nord",
		"gruvbox",
		"tokyo-night",
		"catppuccin-mocha",
		"solarized-dark",
		"solarized-light",
		"github-dark",
		"github-light",
		"one-dark",
		"rose-pine",
		"kanagawa",
		"everforest",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if th, ok := ThemeByName("  Dracula "); !ok || th.Name() != "dracula" {
		t.Fatalf("expected case-insensitive lookup")
	}
	if th, ok := ThemeByName(""); !ok || th.Name() != "default" {
		t.Fatalf("expected empty name to select the default theme")
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %d", len(expected), len(available))
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] > available[i] {
			t.Fatalf("expected sorted theme names, got %v", available)
		}
	}
}

func TestThemeStylesResolve(t *testing.T) {
	for _, name := range AvailableThemes() {
		th, _ := ThemeByName(name)
		s := th.Styles()
		for _, st := range []Style{s.Text, s.Strong, s.Emphasis, s.LinkText, s.LinkURL} {
			if st.Color == "" {
				continue
			}
			if _, ok := ResolveColor(st.Color); !ok {
				t.Fatalf("theme %q: unresolvable color %q", name, st.Color)
			}
		}
	}
}

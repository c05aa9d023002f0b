package golden

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCasesSorted(t *testing.T) {
	dir := t.TempDir()
	body := "[[case]]\nname = \"b\"\ntext = \"x\"\n\n[[case]]\nname = \"a\"\ntext = \"[b]y[/b]\"\n"
	if err := os.WriteFile(filepath.Join(dir, CasesFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cases, err := LoadCases(dir)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) != 2 || cases[0].Name != "a" || cases[1].Name != "b" {
		t.Fatalf("cases = %+v", cases)
	}
	out, err := cases[0].Render()
	if err != nil {
		t.Fatal(err)
	}
	if out != "<b>y</b>\n" {
		t.Fatalf("render = %q", out)
	}
	if got := cases[1].Path(dir); got != filepath.Join(dir, "b.html") {
		t.Fatalf("path = %q", got)
	}
}

func TestLoadCasesRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	body := "[[case]]\nname = \"a\"\n\n[[case]]\nname = \"a\"\n"
	if err := os.WriteFile(filepath.Join(dir, CasesFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCases(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

// Package golden renders the HTML golden cases under testdata/golden.
package golden

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"pkt.systems/trmarkup"
	"pkt.systems/trmarkup/dom"
	"pkt.systems/trmarkup/internal/transpilers"
)

// CasesFile is the case list relative to a golden directory.
const CasesFile = "cases.toml"

// Case is one golden rendering.
type Case struct {
	Name        string         `toml:"name"`
	Text        string         `toml:"text"`
	Params      map[string]any `toml:"params"`
	Translation map[string]any `toml:"translation"`
	Emoticons   bool           `toml:"emoticons"`
	Colors      bool           `toml:"colors"`
	Links       []string       `toml:"links"`
}

type caseFile struct {
	Cases []Case `toml:"case"`
}

// LoadCases reads the cases of dir, sorted by name.
func LoadCases(dir string) ([]Case, error) {
	path := filepath.Join(dir, CasesFile)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("golden: read %s: %w", path, err)
	}
	var f caseFile
	if err := toml.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("golden: parse %s: %w", path, err)
	}
	seen := map[string]bool{}
	for _, c := range f.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("golden: %s: case without name", path)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("golden: %s: duplicate case %q", path, c.Name)
		}
		seen[c.Name] = true
	}
	sort.Slice(f.Cases, func(i, j int) bool { return f.Cases[i].Name < f.Cases[j].Name })
	return f.Cases, nil
}

// Path returns the golden file of c within dir.
func (c Case) Path(dir string) string {
	return filepath.Join(dir, c.Name+".html")
}

// Transpilers returns the transpiler list the case renders with.
func (c Case) Transpilers() []trmarkup.Transpiler {
	return transpilers.Build(dom.NewFactory(), transpilers.Options{
		Emoticons: c.Emoticons,
		Colors:    c.Colors,
		Links:     c.Links,
	})
}

// Render returns the golden file contents for c: the inner HTML of the
// rendered target followed by a newline.
func (c Case) Render() (string, error) {
	target := dom.NewTarget()
	err := trmarkup.Render(trmarkup.RenderRequest{
		Text:        c.Text,
		Transpilers: c.Transpilers(),
		Translation: trmarkup.Translation(c.Translation),
		Target:      target,
		Parameters:  trmarkup.Parameters(c.Params),
	})
	if err != nil {
		return "", fmt.Errorf("golden: render %s: %w", c.Name, err)
	}
	out, err := target.HTML()
	if err != nil {
		return "", fmt.Errorf("golden: serialize %s: %w", c.Name, err)
	}
	return out + "\n", nil
}

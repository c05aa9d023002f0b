package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/tliron/commonlog"
	"pkt.systems/trmarkup"
	"pkt.systems/trmarkup/catalog"
	"pkt.systems/trmarkup/dom"
	"pkt.systems/trmarkup/internal/transpilers"
	trterm "pkt.systems/trmarkup/term"
)

const (
	formatANSI = "ansi"
	formatHTML = "html"
	formatText = "text"
)

var log = commonlog.GetLogger("trmarkup")

type options struct {
	catalog    string
	locale     string
	fallback   string
	text       string
	keys       []string
	params     []string
	paramsFile string
	format     string
	themeName  string
	width      int
	osc8       bool
	emoticons  bool
	colors     bool
	links      []string
}

// preview renders catalog keys or raw text with one transpiler set.
type preview struct {
	opts   options
	theme  trterm.Theme
	params trmarkup.Parameters

	mu    sync.Mutex
	cat   *catalog.Catalog
	cache *trmarkup.Cache
}

func newPreview(ctx context.Context, opts options) (*preview, error) {
	switch opts.format {
	case formatANSI, formatHTML, formatText:
	default:
		return nil, fmt.Errorf("unknown format %q (expected ansi|html|text)", opts.format)
	}
	theme, ok := trterm.ThemeByName(defaultIf(opts.themeName, "default"))
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", opts.themeName)
	}
	params, err := loadParams(opts.paramsFile, opts.params)
	if err != nil {
		return nil, err
	}
	fallback, err := parseFallback(opts.fallback)
	if err != nil {
		return nil, err
	}
	p := &preview{
		opts:   opts,
		theme:  theme,
		params: params,
		cat:    catalog.New(catalog.WithFallback(fallback)),
		cache:  trmarkup.NewCache(buildTranspilers(opts)),
	}
	if opts.catalog != "" {
		if err := p.load(ctx); err != nil {
			return nil, err
		}
	} else if opts.text == "" {
		return nil, fmt.Errorf("no catalog configured; use --catalog or --text")
	}
	return p, nil
}

func buildTranspilers(opts options) []trmarkup.Transpiler {
	return transpilers.Build(dom.NewFactory(), transpilers.Options{
		Emoticons: opts.emoticons,
		Colors:    opts.colors,
		Links:     opts.links,
	})
}

// load (re)reads the catalog and drops cached render functions.
func (p *preview) load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cat.Reset()
	p.cache.Reset()
	src := p.opts.catalog
	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return p.cat.LoadURL(ctx, catalog.HTTPLoadRequest{URL: src})
	}
	path := normalizePath(src)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return p.cat.LoadDir(path)
	}
	return p.cat.LoadFile(path)
}

// run renders every requested key, or the --text value, to w.
func (p *preview) run(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.opts.text != "" {
		translation, scope := p.textTranslation()
		if err := p.write(w, p.cache.Renderer(scope, p.opts.text, translation)); err != nil {
			return err
		}
	}
	for _, key := range p.opts.keys {
		res, err := p.cat.Lookup(p.opts.locale, key)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", key, err)
		}
		if !res.Found {
			log.Infof("rendering missing key %q as %q", key, res.Value)
		}
		fn := p.cache.Renderer(res.Language.String(), res.Value, res.Translation)
		if err := p.write(w, fn); err != nil {
			return err
		}
	}
	return nil
}

// textTranslation returns the dictionary --text interpolates against.
func (p *preview) textTranslation() (trmarkup.Translation, string) {
	if len(p.cat.Languages()) == 0 {
		return nil, ""
	}
	tag, err := p.cat.Match(p.opts.locale)
	if err != nil {
		return nil, ""
	}
	return p.cat.Dictionary(tag), tag.String()
}

func (p *preview) write(w io.Writer, fn trmarkup.RenderFunc) error {
	target := dom.NewTarget()
	fn(target, p.params)
	switch p.opts.format {
	case formatHTML:
		out, err := target.HTML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case formatText:
		_, err := fmt.Fprintln(w, target.TextContent())
		return err
	}
	return trterm.Render(trterm.RenderRequest{
		Nodes:   target.Nodes(),
		Writer:  w,
		Width:   p.opts.width,
		Theme:   p.theme,
		Options: []trterm.Option{trterm.WithOSC8(p.opts.osc8)},
	})
}

// loadParams merges the TOML parameters file with key=value pairs, the
// latter taking precedence.
func loadParams(path string, pairs []string) (trmarkup.Parameters, error) {
	params := trmarkup.Parameters{}
	if path != "" {
		buf, err := os.ReadFile(normalizePath(path))
		if err != nil {
			return nil, fmt.Errorf("params: %w", err)
		}
		var raw map[string]any
		if err := toml.Unmarshal(buf, &raw); err != nil {
			return nil, fmt.Errorf("params: parse %s: %w", path, err)
		}
		for k, v := range raw {
			params[k] = v
		}
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("params: expected key=value, got %q", pair)
		}
		params[key] = value
	}
	return params, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"pkt.systems/trmarkup/internal/config"
	trterm "pkt.systems/trmarkup/term"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/trmarkup")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var (
		opts       options
		listThemes bool
		outPath    string
		watch      bool
		verbose    int
		osc8Flag   string
	)
	flags := pflag.NewFlagSet("trmarkup", pflag.ExitOnError)
	flags.StringVarP(&opts.catalog, "catalog", "c", cfg.Catalog, "Message file, directory or http(s) URL")
	flags.StringVarP(&opts.locale, "locale", "l", cfg.Locale, "Requested locale (Accept-Language syntax)")
	flags.StringVar(&opts.fallback, "fallback", cfg.FallbackLocale, "Fallback locale")
	flags.StringVar(&opts.text, "text", "", "Render this text instead of catalog keys")
	flags.StringArrayVarP(&opts.params, "param", "p", nil, "Render parameter key=value (repeatable)")
	flags.StringVar(&opts.paramsFile, "params", "", "TOML file with render parameters")
	flags.StringVarP(&opts.format, "format", "f", formatANSI, "Output format: ansi|html|text")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultIf(cfg.Theme, "default"), "Theme name")
	flags.IntVar(&opts.width, "width", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", cfg.OSC8, "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&opts.emoticons, "emoticons", false, "Replace emoticons with glyphs")
	flags.BoolVar(&opts.colors, "colors", false, "Enable [c:COLOR]...[/c] colored text")
	flags.StringArrayVar(&opts.links, "link", nil, "Render [KEY]...[/KEY] as a link to parameter KEY (repeatable)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&watch, "watch", "w", false, "Re-render when the catalog changes")
	flags.CountVarP(&verbose, "verbose", "v", "Increase log verbosity (repeatable)")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: trmarkup [flags] [key...]\n")
		fmt.Fprintln(os.Stderr, "\nRenders translation keys from the catalog, or --text, with the given parameters.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	commonlog.Configure(verbose, nil)

	if listThemes {
		printThemes(os.Stdout)
		return
	}
	opts.keys = flags.Args()
	if opts.text == "" && len(opts.keys) == 0 {
		flags.Usage()
		os.Exit(2)
	}
	if opts.osc8, err = resolveOSC8(osc8Flag); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}
	if opts.width <= 0 {
		opts.width = terminalWidth(defaultWidth)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if isTerminal(writer) && opts.format == formatHTML {
		log.Noticef("writing html to a terminal; use -f text for plain output")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := newPreview(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if strings.Contains(err.Error(), "unknown theme") {
			printThemes(os.Stderr)
		}
		os.Exit(2)
	}
	if err := p.run(writer); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	if !watch {
		return
	}
	if err := watchCatalog(ctx, p, writer); err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		os.Exit(1)
	}
}

func printThemes(w io.Writer) {
	names := trterm.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return trterm.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func defaultIf(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseFallback(locale string) (language.Tag, error) {
	tag, err := language.Parse(defaultIf(locale, "en"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid fallback locale %q: %w", locale, err)
	}
	return tag, nil
}

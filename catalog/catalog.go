// Package catalog loads translation dictionaries and resolves translation
// keys for a requested locale.
//
// Message files use the go-i18n layout: the language tag and format are taken
// from the file name (active.en.toml, fr.json) and nested tables produce dotted
// keys. Values are kept verbatim so that markup and {{ }} expressions reach the
// renderer untouched.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/tliron/commonlog"
	"golang.org/x/text/language"

	"pkt.systems/trmarkup"
)

var (
	// ErrUnknownFormat reports a message file with an unsupported extension.
	ErrUnknownFormat = errors.New("catalog: unknown message file format")
	// ErrNoDictionaries reports a lookup in a catalog without dictionaries.
	ErrNoDictionaries = errors.New("catalog: no dictionaries loaded")
)

var formats = map[string]bool{"toml": true, "json": true}

// MissingHandler returns the value used for a key that no dictionary
// provides.
type MissingHandler func(key string, locale language.Tag) string

// Catalog holds one dictionary per language. It is safe for concurrent use.
type Catalog struct {
	fallback   language.Tag
	allowEmpty bool
	missing    MissingHandler
	log        commonlog.Logger

	mu      sync.RWMutex
	bundle  *i18n.Bundle
	dicts   map[string]trmarkup.Translation
	tags    []language.Tag
	matcher language.Matcher
}

// New returns an empty catalog. The fallback language defaults to English.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		fallback: language.English,
		log:      commonlog.GetLogger("trmarkup.catalog"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.missing == nil {
		c.missing = c.keepKey
	}
	c.resetLocked()
	return c
}

func (c *Catalog) keepKey(key string, locale language.Tag) string {
	c.log.Warningf("missing translation %q for %s", key, locale)
	return key
}

func (c *Catalog) resetLocked() {
	c.bundle = i18n.NewBundle(c.fallback)
	c.bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	c.dicts = make(map[string]trmarkup.Translation)
	c.tags = nil
	c.matcher = nil
}

// Reset drops every loaded dictionary.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Fallback returns the fallback language.
func (c *Catalog) Fallback() language.Tag { return c.fallback }

// LoadFile loads a message file. The language and format are taken from the
// file name.
func (c *Catalog) LoadFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return c.LoadBytes(buf, path)
}

// LoadDir loads every TOML and JSON message file in dir.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("catalog: read dir %s: %w", dir, err)
	}
	loaded := 0
	for _, e := range entries {
		if e.IsDir() || !formats[formatOf(e.Name())] {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("catalog: %s: %w", dir, ErrNoDictionaries)
	}
	return nil
}

// LoadBytes loads message file contents. name is the file name used to derive
// the language and format. Translations carry a single text: for messages with
// plural forms the other form is kept, or the first non-empty form in the
// order one, many, few, two, zero when other is empty. The remaining forms are
// dropped and logged at debug level.
func (c *Catalog) LoadBytes(buf []byte, name string) error {
	if format := formatOf(name); !formats[format] {
		return fmt.Errorf("catalog: %s: %w", name, ErrUnknownFormat)
	}
	if err := trmarkup.ValidateBytes(buf); err != nil {
		return fmt.Errorf("catalog: %s: %w", name, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	file, err := c.bundle.ParseMessageFileBytes(buf, name)
	if err != nil {
		c.log.Errorf("parse %s: %s", name, err.Error())
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	key := file.Tag.String()
	prev, ok := c.dicts[key]
	if !ok {
		c.tags = append(c.tags, file.Tag)
		c.matcher = language.NewMatcher(c.tags)
	}
	// Dictionaries handed out by Lookup are never modified.
	dict := make(trmarkup.Translation, len(prev)+len(file.Messages))
	for k, v := range prev {
		dict[k] = v
	}
	for _, m := range file.Messages {
		text, dropped := messageText(m)
		if dropped > 0 {
			c.log.Debugf("%s: message %q: kept one plural form, dropped %d", name, m.ID, dropped)
		}
		dict[m.ID] = text
	}
	c.dicts[key] = dict
	c.log.Infof("loaded %d messages for %s from %s", len(file.Messages), file.Tag, name)
	return nil
}

// messageText returns the text kept for m and the number of non-empty forms
// dropped.
func messageText(m *i18n.Message) (string, int) {
	var text string
	dropped := 0
	for _, s := range []string{m.Other, m.One, m.Many, m.Few, m.Two, m.Zero} {
		if s == "" {
			continue
		}
		if text == "" {
			text = s
			continue
		}
		dropped++
	}
	return text, dropped
}

func formatOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return ext[1:]
}

// Languages returns the loaded languages in load order.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Keys returns the sorted keys of the dictionary for tag.
func (c *Catalog) Keys(tag language.Tag) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dict := c.dicts[tag.String()]
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Match returns the loaded language that best serves locale, or the fallback
// when none does.
func (c *Catalog) Match(locale string) (language.Tag, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matchLocked(locale)
}

func (c *Catalog) matchLocked(locale string) (language.Tag, error) {
	if len(c.tags) == 0 {
		return language.Und, ErrNoDictionaries
	}
	if locale == "" {
		return c.fallback, nil
	}
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil {
		return language.Und, fmt.Errorf("catalog: parse locale %q: %w", locale, err)
	}
	_, index, confidence := c.matcher.Match(desired...)
	if confidence == language.No {
		return c.fallback, nil
	}
	return c.tags[index], nil
}

// Dictionary returns a copy of the dictionary for tag.
func (c *Catalog) Dictionary(tag language.Tag) trmarkup.Translation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dict := c.dicts[tag.String()]
	if dict == nil {
		return nil
	}
	out := make(trmarkup.Translation, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out
}

// Result is the outcome of a lookup.
type Result struct {
	// Value is the translation text, or the missing handler value.
	Value string
	// Language is the language of the dictionary that provided Value.
	Language language.Tag
	// Translation is the dictionary that provided Value. Interpolation
	// expressions resolve further keys against it. It must not be modified.
	Translation trmarkup.Translation
	// Found reports whether a dictionary provided Value.
	Found bool
}

// Lookup resolves key for locale. The matched language is tried first and
// the fallback language second. Empty values count as missing unless the
// catalog allows them.
func (c *Catalog) Lookup(locale, key string) (Result, error) {
	c.mu.RLock()
	tag, err := c.matchLocked(locale)
	if err != nil {
		c.mu.RUnlock()
		return Result{}, err
	}
	for _, t := range lookupOrder(tag, c.fallback) {
		dict := c.dicts[t.String()]
		v, ok := dict[key]
		if !ok {
			continue
		}
		s, _ := v.(string)
		if s == "" && !c.allowEmpty {
			continue
		}
		c.mu.RUnlock()
		return Result{Value: s, Language: t, Translation: dict, Found: true}, nil
	}
	dict := c.dicts[tag.String()]
	c.mu.RUnlock()
	return Result{Value: c.missing(key, tag), Language: tag, Translation: dict}, nil
}

// Translate returns the text for key in locale, or the missing handler value.
func (c *Catalog) Translate(locale, key string) (string, error) {
	res, err := c.Lookup(locale, key)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

func lookupOrder(tag, fallback language.Tag) []language.Tag {
	if tag.String() == fallback.String() {
		return []language.Tag{tag}
	}
	return []language.Tag{tag, fallback}
}

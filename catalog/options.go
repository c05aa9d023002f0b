package catalog

import (
	"github.com/tliron/commonlog"
	"golang.org/x/text/language"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithFallback sets the language tried when the requested one lacks a key.
func WithFallback(tag language.Tag) Option {
	return func(c *Catalog) {
		c.fallback = tag
	}
}

// WithAllowEmpty treats empty translation values as present.
func WithAllowEmpty(allow bool) Option {
	return func(c *Catalog) {
		c.allowEmpty = allow
	}
}

// WithMissingHandler sets the handler deciding the value of missing keys.
func WithMissingHandler(h MissingHandler) Option {
	return func(c *Catalog) {
		c.missing = h
	}
}

// WithLogger sets the logger for load and lookup diagnostics.
func WithLogger(log commonlog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

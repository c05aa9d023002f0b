package term

import "github.com/muesli/termenv"

// Option configures rendering behavior.
type Option func(*config)

type config struct {
	osc8     bool
	softWrap bool
	profile  termenv.Profile
}

func defaultConfig() config {
	return config{profile: termenv.TrueColor}
}

// WithOSC8 enables or disables OSC 8 hyperlinks. Without them link targets
// are printed after the link text.
func WithOSC8(enabled bool) Option {
	return func(cfg *config) {
		cfg.osc8 = enabled
	}
}

// WithSoftWrap enables splitting words longer than the width.
func WithSoftWrap(enabled bool) Option {
	return func(cfg *config) {
		cfg.softWrap = enabled
	}
}

// WithProfile sets the terminal color profile. termenv.Ascii disables all
// styling.
func WithProfile(profile termenv.Profile) Option {
	return func(cfg *config) {
		cfg.profile = profile
	}
}

package paginator

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// DefaultTimeout is how long a session waits for a control reaction
	// before it clears its reactions and closes.
	DefaultTimeout = 60 * time.Second

	// DefaultHelpColor is the accent color of the generated help page.
	DefaultHelpColor uint32 = 0x00FFFF

	// JumpTimeout bounds the page-jump dialog's wait for a page number.
	JumpTimeout = 30 * time.Second

	// CleanupDelay is the grace period before the page-jump dialog's
	// prompt, reply, and notices are swept from the channel.
	CleanupDelay = 5 * time.Second
)

// Options configures a pagination session.
type Options struct {
	// Timeout bounds the wait for each control reaction. Zero or negative
	// falls back to DefaultTimeout.
	Timeout time.Duration `env:"PAGINATOR_TIMEOUT" envDefault:"60s"`

	// PageNumbers stamps a "Page i/N" footer on every rendered page.
	PageNumbers bool `env:"PAGINATOR_PAGE_NUMBERS" envDefault:"true"`

	// HelpColor is the accent color of the generated help page.
	HelpColor uint32 `env:"PAGINATOR_HELP_COLOR" envDefault:"65535"`
}

// NewOptions creates an Options with default settings.
func NewOptions() *Options {
	return &Options{
		Timeout:     DefaultTimeout,
		PageNumbers: true,
		HelpColor:   DefaultHelpColor,
	}
}

// OptionsFromEnv builds Options from PAGINATOR_* environment variables,
// falling back to the defaults for anything unset.
func OptionsFromEnv() (*Options, error) {
	opts := &Options{}
	if err := env.Parse(opts); err != nil {
		return nil, fmt.Errorf("parse paginator environment: %w", err)
	}
	return opts, nil
}

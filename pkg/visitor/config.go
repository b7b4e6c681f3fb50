package visitor

import "github.com/dmitrymomot/browserkit/pkg/cookie"

// Config holds visitor tracker configuration
type Config struct {
	CookieName   string `env:"VISITOR_COOKIE_NAME" envDefault:"_bk_vid"`
	LifetimeDays int    `env:"VISITOR_LIFETIME_DAYS" envDefault:"365"`
}

// DefaultConfig returns default visitor tracker configuration
func DefaultConfig() Config {
	return Config{
		CookieName:   defaultCookieName,
		LifetimeDays: defaultDays,
	}
}

// NewFromConfig creates a Tracker from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(store *cookie.Store, cfg Config, opts ...Option) (*Tracker, error) {
	configOpts := make([]Option, 0, 2)

	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}
	if cfg.LifetimeDays > 0 {
		configOpts = append(configOpts, WithLifetimeDays(cfg.LifetimeDays))
	}

	configOpts = append(configOpts, opts...)

	return New(store, configOpts...)
}

package cookie

// Config holds cookie store configuration
type Config struct {
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
	Domain string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
	Days   int    `env:"COOKIE_DAYS" envDefault:"0"`
	Raw    bool   `env:"COOKIE_RAW" envDefault:"false"`
}

// DefaultConfig returns default cookie store configuration
func DefaultConfig() Config {
	return Config{
		Path: "/",
	}
}

// NewFromConfig creates a Store from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(jar Jar, cfg Config, opts ...Option) *Store {
	configOpts := make([]Option, 0, 5)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}
	if cfg.Days != 0 {
		configOpts = append(configOpts, WithDays(cfg.Days))
	}
	if cfg.Raw {
		configOpts = append(configOpts, WithRaw(cfg.Raw))
	}

	configOpts = append(configOpts, opts...)

	return New(jar, configOpts...)
}

package cookie

import "time"

type Options struct {
	Path    string
	Domain  string
	Secure  bool
	Raw     bool
	Expires time.Time

	// days is tracked with a set-flag so WithDays(0) and WithDays(-1)
	// stay distinguishable from "no days option given"
	days    int
	hasDays bool
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithRaw disables URL escaping of names and values on both reads and
// writes
func WithRaw(raw bool) Option {
	return func(o *Options) {
		o.Raw = raw
	}
}

func WithExpires(at time.Time) Option {
	return func(o *Options) {
		o.Expires = at
	}
}

// WithDays sets the cookie lifetime relative to write time. Zero expires
// the cookie immediately, negative values force deletion.
func WithDays(days int) Option {
	return func(o *Options) {
		o.days = days
		o.hasDays = true
	}
}

// applyOptions creates a new Options struct by copying the base options
// and applying the provided option functions. The base options are not
// modified.
func applyOptions(base Options, opts []Option) Options {
	result := Options{
		Path:    base.Path,
		Domain:  base.Domain,
		Secure:  base.Secure,
		Raw:     base.Raw,
		Expires: base.Expires,
		days:    base.days,
		hasDays: base.hasDays,
	}

	for _, opt := range opts {
		opt(&result)
	}

	return result
}

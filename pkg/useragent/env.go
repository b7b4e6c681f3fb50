package useragent

import (
	"net/http"
	"strings"
)

// Env supplies the ambient browser identity signals a host environment
// exposes. Implementations are expected to be cheap: everything derived
// from an Env is recomputed on access, never cached, so a live
// implementation always reflects current host state.
type Env interface {
	// UserAgent returns the user agent string, empty when unavailable
	UserAgent() string

	// Platform returns the platform string (navigator.platform style),
	// empty when unavailable
	Platform() string

	// Language returns the preferred language tag, empty when unavailable
	Language() string

	// TouchPoints returns the number of supported touch contact points,
	// zero for non-touch environments
	TouchPoints() int
}

// StaticEnv is an Env over fixed values, the common choice for tests and
// for hosts that snapshot their identity once.
type StaticEnv struct {
	userAgent   string
	platform    string
	language    string
	touchPoints int
}

// EnvOption configures a StaticEnv
type EnvOption func(*StaticEnv)

func WithPlatform(platform string) EnvOption {
	return func(e *StaticEnv) {
		e.platform = platform
	}
}

func WithLanguage(language string) EnvOption {
	return func(e *StaticEnv) {
		e.language = language
	}
}

func WithTouchPoints(n int) EnvOption {
	return func(e *StaticEnv) {
		if n > 0 {
			e.touchPoints = n
		}
	}
}

// NewEnv creates a StaticEnv for the given user agent string
func NewEnv(userAgent string, opts ...EnvOption) StaticEnv {
	e := StaticEnv{userAgent: userAgent}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e StaticEnv) UserAgent() string { return e.userAgent }
func (e StaticEnv) Platform() string  { return e.platform }
func (e StaticEnv) Language() string  { return e.language }
func (e StaticEnv) TouchPoints() int  { return e.touchPoints }

// RequestEnv adapts an *http.Request into an Env using the standard
// identity headers plus the low-entropy client hints browsers send by
// default (Sec-CH-UA-Platform, Sec-CH-UA-Mobile).
type RequestEnv struct {
	r *http.Request
}

// NewRequestEnv wraps the request; the request must outlive the Env
func NewRequestEnv(r *http.Request) RequestEnv {
	return RequestEnv{r: r}
}

func (e RequestEnv) UserAgent() string {
	if e.r == nil {
		return ""
	}
	return e.r.UserAgent()
}

func (e RequestEnv) Platform() string {
	if e.r == nil {
		return ""
	}
	// Client hint values arrive quoted, e.g. `"Windows"`
	return strings.Trim(e.r.Header.Get("Sec-CH-UA-Platform"), `"`)
}

func (e RequestEnv) Language() string {
	if e.r == nil {
		return ""
	}
	lang := e.r.Header.Get("Accept-Language")
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	return strings.TrimSpace(lang)
}

func (e RequestEnv) TouchPoints() int {
	if e.r == nil {
		return 0
	}
	// Mobile client hint is the only touch signal available server-side
	if e.r.Header.Get("Sec-CH-UA-Mobile") == "?1" {
		return 1
	}
	return 0
}

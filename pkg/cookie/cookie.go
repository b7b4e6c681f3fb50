package cookie

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Store reads and writes cookies through an injected Jar with a set of
// default options merged into every write. The Store itself holds no
// cookie state; everything lives in the Jar.
type Store struct {
	mu       sync.RWMutex
	jar      Jar
	defaults Options
}

func baseOptions() Options {
	return Options{Path: "/"}
}

// New creates a Store over the given jar. Construction options are
// applied on top of the package baseline (path "/").
func New(jar Jar, opts ...Option) *Store {
	return &Store{
		jar:      jar,
		defaults: applyOptions(baseOptions(), opts),
	}
}

// Configure replaces the store defaults wholesale: the new defaults are
// built from the baseline plus the given options, with no merge against
// whatever an earlier Configure set. Last call wins entirely.
func (s *Store) Configure(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = applyOptions(baseOptions(), opts)
}

// Get scans the jar for the named cookie and returns its decoded value.
// Returns ErrCookieNotFound when absent and ErrNoJar when the store has
// no jar; callers wanting the degrade-to-default contract use GetDefault.
func (s *Store) Get(name string, opts ...Option) (string, error) {
	if s.jar == nil {
		return "", ErrNoJar
	}

	options := s.merged(opts)
	key := name
	if !options.Raw {
		key = url.QueryEscape(name)
	}

	for _, pair := range strings.Split(s.jar.Cookies(), ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || k != key {
			continue
		}
		if options.Raw {
			return v, nil
		}
		decoded, err := url.QueryUnescape(v)
		if err != nil {
			return "", fmt.Errorf("%w: undecodable value for %q", ErrCookieNotFound, name)
		}
		return decoded, nil
	}

	return "", ErrCookieNotFound
}

// GetDefault returns the cookie value or fallback when the cookie is
// absent, undecodable, or no jar is available. It never fails.
func (s *Store) GetDefault(name, fallback string, opts ...Option) string {
	v, err := s.Get(name, opts...)
	if err != nil {
		return fallback
	}
	return v
}

// Set serializes the cookie and writes it through the jar. Store defaults
// are merged with the call options, call options winning. A days option
// is converted to an absolute expires at write time; negative days land
// in the past and unset the cookie.
func (s *Store) Set(name, value string, opts ...Option) error {
	if s.jar == nil {
		return ErrNoJar
	}
	if name == "" {
		return ErrInvalidName
	}

	options := s.merged(opts)
	if options.hasDays {
		options.Expires = time.Now().Add(time.Duration(options.days) * 24 * time.Hour)
	}

	s.jar.SetCookie(serialize(name, value, options))
	return nil
}

// Unset removes the cookie by writing it with an already-expired
// lifetime, equivalent to Set with a forced days of -1
func (s *Store) Unset(name string, opts ...Option) error {
	return s.Set(name, "", append(opts, WithDays(-1))...)
}

func (s *Store) merged(opts []Option) Options {
	s.mu.RLock()
	defaults := s.defaults
	s.mu.RUnlock()
	return applyOptions(defaults, opts)
}

// serialize renders "name=value[; expires=...][; path=...][; domain=...][; secure]"
// with the attribute order the cookie string format documents
func serialize(name, value string, options Options) string {
	if !options.Raw {
		name = url.QueryEscape(name)
		value = url.QueryEscape(value)
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	if !options.Expires.IsZero() {
		b.WriteString("; expires=")
		b.WriteString(options.Expires.UTC().Format(http.TimeFormat))
	}
	if options.Path != "" {
		b.WriteString("; path=")
		b.WriteString(options.Path)
	}
	if options.Domain != "" {
		b.WriteString("; domain=")
		b.WriteString(options.Domain)
	}
	if options.Secure {
		b.WriteString("; secure")
	}

	return b.String()
}

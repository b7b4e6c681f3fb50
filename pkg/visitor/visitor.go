package visitor

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/browserkit/pkg/cookie"
)

const (
	defaultCookieName = "_bk_vid"
	defaultDays       = 365
)

var (
	ErrNoStore = errors.New("visitor.no_store")
)

// Tracker issues and reads a first-party visitor identifier kept in a
// long-lived cookie. It is stateless: the cookie is the only storage.
type Tracker struct {
	store *cookie.Store
	name  string
	days  int
}

type Option func(*Tracker)

func WithCookieName(name string) Option {
	return func(t *Tracker) {
		if name != "" {
			t.name = name
		}
	}
}

func WithLifetimeDays(days int) Option {
	return func(t *Tracker) {
		if days > 0 {
			t.days = days
		}
	}
}

func New(store *cookie.Store, opts ...Option) (*Tracker, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	t := &Tracker{
		store: store,
		name:  defaultCookieName,
		days:  defaultDays,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Ensure returns the current visitor ID, minting and storing a new
// UUIDv4 when the cookie is absent or does not hold a valid UUID.
// The created flag reports whether a new ID was issued.
func (t *Tracker) Ensure() (id string, created bool, err error) {
	existing, err := t.store.Get(t.name)
	if err == nil {
		if _, parseErr := uuid.Parse(existing); parseErr == nil {
			return existing, false, nil
		}
		// A present but corrupted ID is replaced rather than kept
	} else if !errors.Is(err, cookie.ErrCookieNotFound) {
		return "", false, err
	}

	id = uuid.NewString()
	if err := t.store.Set(t.name, id, cookie.WithDays(t.days)); err != nil {
		return "", false, err
	}
	return id, true, nil
}

// ID returns the current visitor ID without minting one;
// cookie.ErrCookieNotFound when no visitor is known
func (t *Tracker) ID() (string, error) {
	id, err := t.store.Get(t.name)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", cookie.ErrCookieNotFound
	}
	return id, nil
}

// Forget unsets the visitor cookie
func (t *Tracker) Forget() error {
	return t.store.Unset(t.name)
}

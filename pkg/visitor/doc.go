// Package visitor issues a first-party visitor identifier kept in a
// long-lived cookie.
//
// Ensure returns the existing ID or mints a UUIDv4 and writes it through
// a cookie.Store; Forget removes it. There is no server-side state — the
// cookie is the identifier.
//
//	store := cookie.New(cookie.NewHeaderJar(w, r))
//	tracker, _ := visitor.New(store, visitor.WithLifetimeDays(730))
//
//	id, created, err := tracker.Ensure()
package visitor

// Package cookie provides get/set/unset operations over an ambient
// cookie store with configurable defaults.
//
// The ambient store is abstracted behind the Jar interface — a single
// string holding all current cookies plus a write entry point — so the
// package works the same against a real host environment, an in-memory
// DocumentJar, or an HTTP exchange via HeaderJar. The Store never caches
// cookie values; every call reads or writes the jar directly.
//
// # Usage
//
//	jar := cookie.NewDocumentJar()
//	store := cookie.New(jar, cookie.WithPath("/"))
//
//	_ = store.Set("theme", "dark", cookie.WithDays(30))
//
//	theme := store.GetDefault("theme", "light")
//
//	_ = store.Unset("theme")
//
// Server-side, bind a store to the current exchange:
//
//	store := cookie.New(cookie.NewHeaderJar(w, r))
//
// # Defaults
//
// Defaults set at construction (or via Configure) are merged into every
// write with per-call options winning. Configure replaces the defaults
// wholesale — it starts from the package baseline, not from the previous
// Configure call.
//
// # Serialization
//
// Writes serialize to the documented cookie string form:
//
//	name=value[; expires=RFC1123-GMT][; path=...][; domain=...][; secure]
//
// Names and values are URL-escaped unless the Raw option is set. A days
// option is resolved to an absolute expires at write time; negative days
// produce a date in the past, which is how Unset deletes.
//
// # Error Handling
//
// Get returns the sentinel ErrCookieNotFound (errors.Is-able) when the
// cookie is absent; GetDefault converts every failure, including a
// missing jar, into the caller's fallback value. Set rejects only empty
// names.
//
// # Configuration
//
// The Config struct allows the store to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are
// applied.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	store := cookie.NewFromConfig(jar, cfg)
//
// # Concurrency
//
// Store guards its defaults internally and DocumentJar is mutex-guarded.
// Hosts whose ambient store allows concurrent mutation must serialize
// access themselves; that contract stays with the environment, not the
// library.
package cookie

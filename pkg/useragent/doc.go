// Package useragent identifies browsers and platforms from their
// user-agent strings and answers version queries such as "chrome >= 43".
//
// Identification is a single ordered scan over a signature table: the
// first entry whose keyword appears in the string wins, and everything
// that does not match degrades to an "unknown" sentinel instead of an
// error. Version numbers are extracted with per-signature precompiled
// regular expressions and compared component-wise as integer sequences.
//
// # Architecture
//
// The ambient browser identity (user agent, platform, language, touch
// capability) is abstracted behind the Env interface so the package never
// reads hidden globals; StaticEnv covers fixed values and tests,
// RequestEnv adapts an *http.Request. A Matcher binds an Env and exposes
// the query surface. Nothing derived from an Env is cached — every call
// re-reads it, so a live Env always reflects current host state.
//
//	┌─────────┐   UserAgent()  ┌──────────────┐
//	│   Env    │───────────────▶│  browser.go  │  ordered signature scan
//	└─────────┘                └──────────────┘
//	     ▲                      ┌──────────────┐
//	     │        Platform()    │ platform.go  │
//	  Matcher ─────────────────▶└──────────────┘
//	     │                      ┌──────────────┐
//	     └─────────────────────▶│  version.go  │  extraction + Compare
//	                            └──────────────┘
//
// # Usage
//
//	env := useragent.NewEnv(r.UserAgent())
//	m := useragent.New(env)
//
//	if m.Matches("chrome >= 43") {
//	    // modern Chromium path
//	}
//
//	if m.IsOutdated("chrome >= 90", "firefox >= 88", "safari >= 14") {
//	    // show the upgrade banner
//	}
//
// Server-side, Middleware parses each request once into the context:
//
//	mux.Handle("/", useragent.Middleware(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    m := useragent.FromContext(r.Context())
//	    if m.IsMobile() { ... }
//	}
//
// # Query semantics
//
// Queries are split on whitespace into "name [op version]". The name is a
// case-insensitive substring check against the identity constants, so
// "expl" matches "explorer" — intentionally loose, and kept that way for
// compatibility with the matching behavior callers depend on. Operators
// are <, <=, >, >=, ==, = and !=; missing version components on either
// side compare as zero, so version 1.2 equals "1.2.0".
//
// # Failure policy
//
// No input is invalid. Unrecognized strings yield BrowserUnknown with an
// empty Version, comparisons against empty versions treat all components
// as zero, and malformed queries simply fail to match. The package
// defines no error values.
//
// # Performance
//
// Identification is plain substring scanning over a small table; version
// regexes are compiled once in init. No allocations beyond the lowercased
// copy of the input on the common path, which keeps the matcher suitable
// for per-request use.
package useragent

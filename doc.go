// Package browserkit is a collection of small browser-utility libraries.
//
// Each package under pkg/ is independently usable and owns exactly one
// concern:
//
//   - pkg/useragent — user-agent identification, version comparison and
//     query matching ("chrome >= 43"), capability predicates
//   - pkg/cookie — get/set/unset over an ambient cookie store with
//     configurable defaults
//   - pkg/fingerprint — stable anonymous client fingerprints
//   - pkg/visitor — cookie-backed first-party visitor identifiers
//   - pkg/config — env-to-struct configuration loading
//
// The packages share no state; ambient browser values (user agent,
// platform, cookie string) are always injected, never read from hidden
// globals, so everything is testable without a host environment.
package browserkit

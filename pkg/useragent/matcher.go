package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher answers browser identity and version queries against an
// injected Env. It holds no derived state: every method re-reads the Env
// and re-runs identification, so a Matcher over a live Env always
// reflects current host values. Safe for concurrent use when its Env is.
type Matcher struct {
	env Env
}

// New creates a Matcher bound to the given environment. A nil env
// behaves like an empty one.
func New(env Env) *Matcher {
	if env == nil {
		env = StaticEnv{}
	}
	return &Matcher{env: env}
}

// Browser identifies the current browser from the Env's user agent
func (m *Matcher) Browser() BrowserInfo {
	return Identify(m.env.UserAgent())
}

// Platform identifies the current platform
func (m *Matcher) Platform() PlatformInfo {
	return IdentifyPlatform(m.env.Platform(), m.env.UserAgent())
}

// BrowserVersion extracts the current browser's version sequence
func (m *Matcher) BrowserVersion() Version {
	ua := m.env.UserAgent()
	return ExtractVersion(ua, Identify(ua))
}

// Matches evaluates a query of the form "name" or "name op version",
// e.g. "chrome" or "chrome >= 43". The name part is a case-insensitive
// substring check against the browser identity; partial names like "expl"
// match "explorer" (documented behavior, kept as-is). With an operator
// and version present the extracted version must also satisfy Compare.
// A dangling operator without a version is ignored and the query falls
// back to the name-only form. Empty queries never match.
func (m *Matcher) Matches(query string) bool {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return false
	}

	name := strings.ToLower(fields[0])
	identity := strings.ToLower(m.Browser().Identity)
	if !strings.Contains(identity, name) {
		return false
	}

	if len(fields) >= 3 && validOperator(fields[1]) {
		return Compare(m.BrowserVersion(), Operator(fields[1]), fields[2])
	}

	return true
}

// OneOf returns true if at least one query matches
func (m *Matcher) OneOf(queries ...string) bool {
	for _, q := range queries {
		if m.Matches(q) {
			return true
		}
	}
	return false
}

// IsOutdated returns true if none of the supported queries match, i.e.
// the current browser falls outside the supported set
func (m *Matcher) IsOutdated(supported ...string) bool {
	return !m.OneOf(supported...)
}

// Label returns a short human-readable identifier for logs and
// analytics, e.g. "Chrome/62 (Windows)" or "Unknown browser".
func (m *Matcher) Label() string {
	browser := m.Browser()
	if browser.IsUnknown() {
		return "Unknown browser"
	}

	title := cases.Title(language.English)
	name := title.String(browser.Identity)

	platform := m.Platform()
	version := m.BrowserVersion()

	switch {
	case len(version) == 0 && platform.IsUnknown():
		return name
	case len(version) == 0:
		return fmt.Sprintf("%s (%s)", name, title.String(platform.Identity))
	case platform.IsUnknown():
		return fmt.Sprintf("%s/%d", name, version.Major())
	}
	return fmt.Sprintf("%s/%d (%s)", name, version.Major(), title.String(platform.Identity))
}

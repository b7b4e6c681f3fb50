package useragent

import (
	"regexp"
	"strings"
)

// BrowserInfo is the result of scanning a user agent string against the
// signature table.
type BrowserInfo struct {
	// Raw is the original string that was scanned
	Raw string

	// SubString is the signature keyword that produced the match,
	// empty for unknown browsers
	SubString string

	// Identity is the canonical browser identity, one of the Browser*
	// constants
	Identity string
}

// IsUnknown returns true if no signature matched the user agent
func (b BrowserInfo) IsUnknown() bool {
	return b.Identity == BrowserUnknown || b.Identity == ""
}

// Signature defines one entry of the ordered browser detection table
type Signature struct {
	// Identity is the Browser* constant reported on match
	Identity string

	// SubString must appear in the lowercased user agent for the entry
	// to match
	SubString string

	// Excludes reject the entry when any of them appear, used where
	// ordering alone cannot disambiguate (Safari vs Chrome)
	Excludes []string

	// VersionKey is the token preceding the version number. Defaults to
	// SubString when empty.
	VersionKey string

	// Pattern overrides the generated version regex for entries whose
	// version token is irregular
	Pattern string

	// OrderHint controls scan order; lower values are checked first
	OrderHint int

	versionRx *regexp.Regexp
}

// Browser signatures in priority order. Chromium-derived browsers embed
// "chrome" in their user agents, so every derivative must come before the
// Chrome entry; Safari comes after Chrome for the same reason and still
// needs explicit excludes. First match wins.
var browserSignatures = []Signature{
	{
		Identity:  BrowserEdge,
		SubString: "edg",
		Pattern:   `(?i)(?:edge|edga|edgios|edg)[/\s]([\d._]+)`,
		OrderHint: 10,
	},
	{
		Identity:  BrowserSamsung,
		SubString: "samsungbrowser",
		OrderHint: 20,
	},
	{
		Identity:  BrowserUC,
		SubString: "ucbrowser",
		OrderHint: 30,
	},
	{
		Identity:  BrowserYandex,
		SubString: "yabrowser",
		OrderHint: 40,
	},
	{
		Identity:  BrowserVivaldi,
		SubString: "vivaldi",
		OrderHint: 50,
	},
	{
		Identity:  BrowserBrave,
		SubString: "brave",
		OrderHint: 60,
	},
	{
		Identity:  BrowserOpera,
		SubString: "opr",
		OrderHint: 70,
	},
	{
		Identity:   BrowserOpera, // Presto-era Opera reports its version behind the Version token
		SubString:  "opera",
		VersionKey: "version",
		OrderHint:  75,
	},
	{
		Identity:  BrowserChrome,
		SubString: "chrome",
		OrderHint: 80,
	},
	{
		Identity:  BrowserFirefox,
		SubString: "firefox",
		OrderHint: 90,
	},
	{
		Identity:   BrowserSafari,
		SubString:  "safari",
		Excludes:   []string{"chrome", "chromium", "android"},
		VersionKey: "version",
		OrderHint:  100,
	},
	{
		Identity:  BrowserExplorer,
		SubString: "msie",
		OrderHint: 110,
	},
	{
		Identity:  BrowserExplorer, // IE 11 dropped the MSIE token
		SubString: "trident",
		Pattern:   `(?i)rv:([\d._]+)`,
		OrderHint: 120,
	},
}

// Identify scans the user agent against the signature table and returns
// the first matching entry. Unrecognized strings degrade to the
// BrowserUnknown sentinel with an empty SubString; no input is invalid.
func Identify(ua string) BrowserInfo {
	lowerUA := strings.ToLower(ua)

	for i := range browserSignatures {
		sig := &browserSignatures[i]
		if !strings.Contains(lowerUA, sig.SubString) {
			continue
		}
		if excluded(lowerUA, sig.Excludes) {
			continue
		}
		return BrowserInfo{
			Raw:       ua,
			SubString: sig.SubString,
			Identity:  sig.Identity,
		}
	}

	return BrowserInfo{
		Raw:      ua,
		Identity: BrowserUnknown,
	}
}

func excluded(lowerUA string, excludes []string) bool {
	for _, e := range excludes {
		if strings.Contains(lowerUA, e) {
			return true
		}
	}
	return false
}

// signatureBySubString resolves the table entry that produced a
// BrowserInfo, for version extraction
func signatureBySubString(subString string) *Signature {
	for i := range browserSignatures {
		if browserSignatures[i].SubString == subString {
			return &browserSignatures[i]
		}
	}
	return nil
}

package useragent

import "strings"

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Capability keyword sets. These predicates are independent of the
// signature table; they only share the ambient strings with it.
var (
	mobileKeywords = newKeywordSet("mobi", "iphone", "ipod", "windows phone", "iemobile", "blackberry", "opera mini", "opera mobi")
	tabletKeywords = newKeywordSet("ipad", "tablet", "kindle", "silk", "playbook")
)

// IsMobile reports whether the environment looks like a phone. Android
// needs the extra "mobile" token since Android tablets omit it.
func (m *Matcher) IsMobile() bool {
	lowerUA := strings.ToLower(m.env.UserAgent())
	if strings.Contains(lowerUA, "android") {
		return strings.Contains(lowerUA, "mobile")
	}
	return mobileKeywords.contains(lowerUA)
}

// IsTablet reports whether the environment looks like a tablet
func (m *Matcher) IsTablet() bool {
	lowerUA := strings.ToLower(m.env.UserAgent())
	if tabletKeywords.contains(lowerUA) {
		return true
	}
	// Android without the mobile token is a tablet
	return strings.Contains(lowerUA, "android") && !strings.Contains(lowerUA, "mobile")
}

// IsIPhone reports whether the user agent or platform names an iPhone
func (m *Matcher) IsIPhone() bool {
	return strings.Contains(strings.ToLower(m.env.UserAgent()), "iphone") ||
		strings.Contains(strings.ToLower(m.env.Platform()), "iphone")
}

// IsAndroid reports whether the user agent names Android
func (m *Matcher) IsAndroid() bool {
	return strings.Contains(strings.ToLower(m.env.UserAgent()), "android")
}

// SupportsTouchEvents reports the environment's touch capability as
// exposed by the Env; it makes no guess from the user agent
func (m *Matcher) SupportsTouchEvents() bool {
	return m.env.TouchPoints() > 0
}

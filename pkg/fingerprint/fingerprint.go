package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/browserkit/pkg/useragent"
)

// Generate creates a client fingerprint from the ambient browser
// identity signals: user agent, platform, language and touch capability.
// Returns a stable 32-character hex string.
func Generate(env useragent.Env) string {
	if env == nil {
		env = useragent.StaticEnv{}
	}

	components := []string{
		env.UserAgent(),
		env.Platform(),
		env.Language(),
	}
	if n := env.TouchPoints(); n > 0 {
		components = append(components, "touch:"+strconv.Itoa(n))
	}

	return hash(components)
}

// GenerateRequest creates a fingerprint from an HTTP request using the
// identity headers plus the set of stable headers the client sent.
// Different browsers ship different header sets, which adds entropy
// beyond the user agent alone.
func GenerateRequest(r *http.Request) string {
	components := []string{
		r.UserAgent(),
		r.Header.Get("Accept-Language"),
		r.Header.Get("Accept-Encoding"),
		r.Header.Get("Accept"),
		stableHeaderSet(r),
	}

	return hash(components)
}

// Validate compares the current ambient fingerprint with a stored one
func Validate(env useragent.Env, stored string) bool {
	return Generate(env) == stored
}

func hash(components []string) string {
	var filtered []string
	for _, comp := range components {
		if comp != "" {
			filtered = append(filtered, comp)
		}
	}

	sum := sha256.Sum256([]byte(strings.Join(filtered, "|")))

	// First 16 bytes as a 32-character hex string
	return hex.EncodeToString(sum[:16])
}

// stableHeaderSet fingerprints which of the commonly present headers the
// client sent. Presence is sorted so identical header sets always hash
// the same.
func stableHeaderSet(r *http.Request) string {
	var names []string
	for name := range r.Header {
		switch strings.ToLower(name) {
		case "user-agent", "accept", "accept-language", "accept-encoding",
			"upgrade-insecure-requests", "sec-fetch-dest", "sec-fetch-mode",
			"sec-fetch-site", "sec-ch-ua-platform", "sec-ch-ua-mobile":
			names = append(names, strings.ToLower(name))
		}
	}

	sort.Strings(names)
	return strings.Join(names, ",")
}

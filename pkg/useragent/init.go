package useragent

import (
	"regexp"
	"sort"
)

func init() {
	// Sort signatures by OrderHint so the first-match-wins scan order is
	// explicit in the table rather than implied by literal order
	sort.Slice(browserSignatures, func(i, j int) bool {
		return browserSignatures[i].OrderHint < browserSignatures[j].OrderHint
	})
	sort.Slice(platformSignatures, func(i, j int) bool {
		return platformSignatures[i].OrderHint < platformSignatures[j].OrderHint
	})

	// Precompile version extraction regexes once at startup
	for i := range browserSignatures {
		sig := &browserSignatures[i]
		if sig.Pattern != "" {
			sig.versionRx = regexp.MustCompile(sig.Pattern)
			continue
		}
		key := sig.VersionKey
		if key == "" {
			key = sig.SubString
		}
		sig.versionRx = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `[/\s]?([\d._]+)`)
	}
}

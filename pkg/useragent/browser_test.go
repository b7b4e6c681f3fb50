package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name      string
		ua        string
		identity  string
		subString string
	}{
		{
			name:      "Chrome on Windows",
			ua:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/62.0.3202.94 Safari/537.36",
			identity:  useragent.BrowserChrome,
			subString: "chrome",
		},
		{
			name:      "Firefox on Windows",
			ua:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
			identity:  useragent.BrowserFirefox,
			subString: "firefox",
		},
		{
			name:      "Safari on macOS",
			ua:        "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15",
			identity:  useragent.BrowserSafari,
			subString: "safari",
		},
		{
			name:      "Chromium Edge wins over Chrome",
			ua:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59",
			identity:  useragent.BrowserEdge,
			subString: "edg",
		},
		{
			name:      "Opera Blink wins over Chrome",
			ua:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36 OPR/77.0.4054.90",
			identity:  useragent.BrowserOpera,
			subString: "opr",
		},
		{
			name:      "Opera Presto",
			ua:        "Opera/9.80 (Windows NT 6.0) Presto/2.12.388 Version/12.14",
			identity:  useragent.BrowserOpera,
			subString: "opera",
		},
		{
			name:      "Samsung Internet wins over Chrome",
			ua:        "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36",
			identity:  useragent.BrowserSamsung,
			subString: "samsungbrowser",
		},
		{
			name:      "Internet Explorer 9",
			ua:        "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)",
			identity:  useragent.BrowserExplorer,
			subString: "msie",
		},
		{
			name:      "Internet Explorer 11 without MSIE token",
			ua:        "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko",
			identity:  useragent.BrowserExplorer,
			subString: "trident",
		},
		{
			name:      "Yandex wins over Chrome",
			ua:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 YaBrowser/21.6.0.616 Yowser/2.5 Safari/537.36",
			identity:  useragent.BrowserYandex,
			subString: "yabrowser",
		},
		{
			name:     "Android stock browser stays unknown",
			ua:       "Mozilla/5.0 (Linux; U; Android 4.0.3; en-us) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30",
			identity: useragent.BrowserUnknown,
		},
		{
			name:     "Non-browser client",
			ua:       "curl/7.64.1",
			identity: useragent.BrowserUnknown,
		},
		{
			name:     "Empty string",
			ua:       "",
			identity: useragent.BrowserUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := useragent.Identify(tc.ua)
			assert.Equal(t, tc.identity, info.Identity)
			assert.Equal(t, tc.subString, info.SubString)
			assert.Equal(t, tc.ua, info.Raw)
		})
	}
}

func TestIdentifyFirstMatchWins(t *testing.T) {
	// Vivaldi embeds Chrome and Safari tokens; the derivative entry must
	// win because it precedes both in the table.
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 Safari/537.36 Vivaldi/3.8"
	info := useragent.Identify(ua)
	assert.Equal(t, useragent.BrowserVivaldi, info.Identity)
}

func TestIdentifyUnknownIsSentinel(t *testing.T) {
	info := useragent.Identify("some unrecognized client string")
	assert.True(t, info.IsUnknown())
	assert.Empty(t, info.SubString)
	assert.Empty(t, useragent.ExtractVersion(info.Raw, info))
}

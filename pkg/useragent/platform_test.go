package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		ua       string
		expected string
	}{
		{
			name:     "Windows from platform string",
			platform: "Win32",
			expected: useragent.PlatformWindows,
		},
		{
			name:     "macOS from platform string",
			platform: "MacIntel",
			expected: useragent.PlatformMac,
		},
		{
			name:     "iPhone from platform string",
			platform: "iPhone",
			expected: useragent.PlatformIPhone,
		},
		{
			name:     "iPad from platform string",
			platform: "iPad",
			expected: useragent.PlatformIPad,
		},
		{
			name:     "Linux from platform string",
			platform: "Linux x86_64",
			expected: useragent.PlatformLinux,
		},
		{
			name:     "Fallback to user agent when platform is empty",
			platform: "",
			ua:       "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
			expected: useragent.PlatformAndroid,
		},
		{
			name:     "X11 maps to Linux",
			platform: "X11; CrOS x86_64",
			expected: useragent.PlatformLinux,
		},
		{
			name:     "Nothing matches",
			platform: "PDP-11",
			ua:       "telnet",
			expected: useragent.PlatformUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := useragent.IdentifyPlatform(tc.platform, tc.ua)
			assert.Equal(t, tc.expected, info.Identity)
		})
	}
}

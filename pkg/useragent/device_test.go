package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityPredicates(t *testing.T) {
	androidPhoneUA := "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	ipadUA := "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

	tests := []struct {
		name    string
		env     useragent.StaticEnv
		mobile  bool
		tablet  bool
		iphone  bool
		android bool
		touch   bool
	}{
		{
			name:   "desktop chrome",
			env:    useragent.NewEnv(chromeWinUA, useragent.WithPlatform("Win32")),
			mobile: false, tablet: false, iphone: false, android: false, touch: false,
		},
		{
			name:   "iphone safari",
			env:    useragent.NewEnv(iphoneUA, useragent.WithPlatform("iPhone"), useragent.WithTouchPoints(5)),
			mobile: true, tablet: false, iphone: true, android: false, touch: true,
		},
		{
			name:    "android phone",
			env:     useragent.NewEnv(androidPhoneUA, useragent.WithTouchPoints(5)),
			mobile:  true,
			android: true,
			touch:   true,
		},
		{
			name:    "android tablet omits the mobile token",
			env:     useragent.NewEnv(androidTabUA, useragent.WithTouchPoints(10)),
			tablet:  true,
			android: true,
			touch:   true,
		},
		{
			name:   "ipad",
			env:    useragent.NewEnv(ipadUA, useragent.WithTouchPoints(5)),
			tablet: true,
			mobile: true, // iPad UAs carry the Mobile token; tablet and mobile are independent predicates
			touch:  true,
		},
		{
			name: "empty environment",
			env:  useragent.NewEnv(""),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := useragent.New(tc.env)
			assert.Equal(t, tc.mobile, m.IsMobile(), "IsMobile")
			assert.Equal(t, tc.tablet, m.IsTablet(), "IsTablet")
			assert.Equal(t, tc.iphone, m.IsIPhone(), "IsIPhone")
			assert.Equal(t, tc.android, m.IsAndroid(), "IsAndroid")
			assert.Equal(t, tc.touch, m.SupportsTouchEvents(), "SupportsTouchEvents")
		})
	}
}

func TestIPhoneFromPlatformOnly(t *testing.T) {
	// Platform string alone is enough even when the UA is opaque
	m := useragent.New(useragent.NewEnv("Opaque/1.0", useragent.WithPlatform("iPhone")))
	assert.True(t, m.IsIPhone())
}

package useragent

// Browser identities returned by Identify. Query matching is a
// case-insensitive substring check against these values, so a query name
// like "explorer" covers both the MSIE and Trident table entries.
const (
	// BrowserEdge identifies Microsoft Edge (Chromium and legacy)
	BrowserEdge = "edge"

	// BrowserChrome identifies Google Chrome and Chromium builds
	BrowserChrome = "chrome"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox = "firefox"

	// BrowserSafari identifies Apple Safari
	BrowserSafari = "safari"

	// BrowserOpera identifies Opera (Blink and Presto eras)
	BrowserOpera = "opera"

	// BrowserSamsung identifies Samsung Internet
	BrowserSamsung = "samsung"

	// BrowserUC identifies UC Browser
	BrowserUC = "uc"

	// BrowserYandex identifies Yandex Browser
	BrowserYandex = "yandex"

	// BrowserVivaldi identifies Vivaldi
	BrowserVivaldi = "vivaldi"

	// BrowserBrave identifies Brave
	BrowserBrave = "brave"

	// BrowserExplorer identifies Internet Explorer (MSIE and Trident)
	BrowserExplorer = "explorer"

	// BrowserUnknown is the sentinel for unrecognized user agents
	BrowserUnknown = "unknown"
)

// Platform identities returned by IdentifyPlatform.
const (
	// PlatformWindows identifies Microsoft Windows
	PlatformWindows = "windows"

	// PlatformMac identifies macOS
	PlatformMac = "mac"

	// PlatformLinux identifies Linux and X11 environments
	PlatformLinux = "linux"

	// PlatformIPhone identifies Apple iPhone
	PlatformIPhone = "iphone"

	// PlatformIPad identifies Apple iPad
	PlatformIPad = "ipad"

	// PlatformIPod identifies Apple iPod touch
	PlatformIPod = "ipod"

	// PlatformAndroid identifies Android devices
	PlatformAndroid = "android"

	// PlatformUnknown is the sentinel for unrecognized platforms
	PlatformUnknown = "unknown"
)

package useragent

import "strings"

// PlatformInfo is the result of scanning the platform string (with a
// user-agent fallback) against the platform signature table.
type PlatformInfo struct {
	// Raw is the string that produced the match
	Raw string

	// SubString is the signature keyword that matched, empty when unknown
	SubString string

	// Identity is one of the Platform* constants
	Identity string
}

// IsUnknown returns true if no platform signature matched
func (p PlatformInfo) IsUnknown() bool {
	return p.Identity == PlatformUnknown || p.Identity == ""
}

// platformSignature mirrors Signature without version extraction;
// platforms carry no version of interest here
type platformSignature struct {
	Identity  string
	SubString string
	OrderHint int
}

// Platform signatures in priority order. iOS devices first since their
// platform strings ("iPhone", "iPad") are unambiguous; "win" last of the
// desktop set because it is the shortest token.
var platformSignatures = []platformSignature{
	{Identity: PlatformIPhone, SubString: "iphone", OrderHint: 10},
	{Identity: PlatformIPad, SubString: "ipad", OrderHint: 20},
	{Identity: PlatformIPod, SubString: "ipod", OrderHint: 30},
	{Identity: PlatformAndroid, SubString: "android", OrderHint: 40},
	{Identity: PlatformMac, SubString: "mac", OrderHint: 50},
	{Identity: PlatformWindows, SubString: "win", OrderHint: 60},
	{Identity: PlatformLinux, SubString: "linux", OrderHint: 70},
	{Identity: PlatformLinux, SubString: "x11", OrderHint: 80},
}

// IdentifyPlatform scans the platform string against the signature table,
// falling back to the user agent when the platform string yields nothing.
// First match wins; unmatched input degrades to PlatformUnknown.
func IdentifyPlatform(platform, ua string) PlatformInfo {
	if info, ok := scanPlatform(platform); ok {
		return info
	}
	if info, ok := scanPlatform(ua); ok {
		return info
	}
	return PlatformInfo{
		Raw:      platform,
		Identity: PlatformUnknown,
	}
}

func scanPlatform(s string) (PlatformInfo, bool) {
	if s == "" {
		return PlatformInfo{}, false
	}
	lower := strings.ToLower(s)
	for _, sig := range platformSignatures {
		if strings.Contains(lower, sig.SubString) {
			return PlatformInfo{
				Raw:       s,
				SubString: sig.SubString,
				Identity:  sig.Identity,
			}, true
		}
	}
	return PlatformInfo{}, false
}

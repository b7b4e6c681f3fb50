package useragent

import (
	"strconv"
	"strings"
)

// Version is a dotted browser version split into its integer components,
// e.g. "62.0.3202.94" becomes Version{62, 0, 3202, 94}. An empty Version
// means no version could be extracted; comparisons treat its components
// as zero.
type Version []int

// String renders the version back to dotted form, "0" when empty
func (v Version) String() string {
	if len(v) == 0 {
		return "0"
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Major returns the leading component, zero when empty
func (v Version) Major() int {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// Operator is a version comparison operator accepted by Compare
type Operator string

const (
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpEqual          Operator = "=="
	OpEqualAlias     Operator = "="
	OpNotEqual       Operator = "!="
)

func validOperator(s string) bool {
	switch Operator(s) {
	case OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual, OpEqual, OpEqualAlias, OpNotEqual:
		return true
	}
	return false
}

// ExtractVersion applies the version pattern of the signature that
// produced info to the original user agent string. Unknown identities and
// unmatched patterns yield an empty Version, never an error.
func ExtractVersion(ua string, info BrowserInfo) Version {
	if info.IsUnknown() || info.SubString == "" {
		return nil
	}
	sig := signatureBySubString(info.SubString)
	if sig == nil || sig.versionRx == nil {
		return nil
	}
	matches := sig.versionRx.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return nil
	}
	return parseVersion(matches[1])
}

// parseVersion splits a raw version token on dots and underscores and
// converts each non-empty part to an integer. Parts without a leading
// digit terminate the sequence.
func parseVersion(raw string) Version {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '.' || r == '_'
	})

	var v Version
	for _, part := range parts {
		n, ok := leadingInt(part)
		if !ok {
			break
		}
		v = append(v, n)
	}
	return v
}

// leadingInt parses the leading decimal digits of s, tolerating suffixes
// like "94b" in beta version tokens
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Compare evaluates actual against the expected dotted version string
// component-wise, left to right. Missing components on either side count
// as zero, so Compare(Version{1, 2}, OpEqual, "1.2.0") is true. Unknown
// operators evaluate to false; Compare never fails.
func Compare(actual Version, op Operator, expected string) bool {
	want := parseVersion(expected)

	cmp := 0
	limit := len(actual)
	if len(want) > limit {
		limit = len(want)
	}
	for i := 0; i < limit; i++ {
		a, w := 0, 0
		if i < len(actual) {
			a = actual[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if a != w {
			if a < w {
				cmp = -1
			} else {
				cmp = 1
			}
			break
		}
	}

	switch op {
	case OpLess:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	case OpEqual, OpEqualAlias:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	}
	return false
}

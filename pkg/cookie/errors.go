package cookie

import "errors"

var (
	ErrNoJar          = errors.New("cookie.no_jar")
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrInvalidName    = errors.New("cookie.invalid_name")
)

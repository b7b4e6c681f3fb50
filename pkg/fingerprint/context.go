package fingerprint

import "context"

type fingerprintContextKey struct{}

// WithContext stores the fingerprint in the context
func WithContext(ctx context.Context, fp string) context.Context {
	return context.WithValue(ctx, fingerprintContextKey{}, fp)
}

// FromContext retrieves the fingerprint stored by Middleware or
// WithContext, empty string when none is present
func FromContext(ctx context.Context) string {
	fp, _ := ctx.Value(fingerprintContextKey{}).(string)
	return fp
}

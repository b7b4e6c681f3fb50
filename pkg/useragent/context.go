package useragent

import "context"

type matcherContextKey struct{}

// WithContext stores the matcher in the context
func WithContext(ctx context.Context, m *Matcher) context.Context {
	return context.WithValue(ctx, matcherContextKey{}, m)
}

// FromContext retrieves the matcher stored by Middleware or WithContext.
// Returns a matcher over an empty environment when none is present, so
// callers never need a nil check.
func FromContext(ctx context.Context) *Matcher {
	if m, ok := ctx.Value(matcherContextKey{}).(*Matcher); ok && m != nil {
		return m
	}
	return New(nil)
}

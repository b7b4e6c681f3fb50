package useragent

import (
	"log/slog"
	"net/http"
)

// Middleware binds a Matcher over the request's identity headers into the
// request context for downstream handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := New(NewRequestEnv(r))
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), m)))
	})
}

// MiddlewareWithLogger behaves like Middleware and additionally logs the
// resolved browser label at debug level on every request
func MiddlewareWithLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := New(NewRequestEnv(r))
			if log != nil {
				log.DebugContext(r.Context(), "resolved user agent",
					slog.String("browser", m.Label()),
					slog.String("path", r.URL.Path),
				)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), m)))
		})
	}
}

package fingerprint

import "net/http"

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fp := GenerateRequest(r)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), fp)))
	})
}

package middleware

import (
	"encoding/json"
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
// A plan submission is a handful of short strings.
const DefaultMaxBodyBytes int64 = 64 << 10

// tooLargeBody matches the API's {"error":{"code","message"}} envelope.
var tooLargeBody, _ = json.Marshal(map[string]map[string]string{
	"error": {"code": "request_too_large", "message": "request body too large"},
})

// NewMaxBodySizeHandler returns a middleware that limits request bodies to
// limit bytes. A declared Content-Length above the limit is rejected with 413
// before the next handler runs; otherwise the body is wrapped with
// http.MaxBytesReader so reads fail once the limit is crossed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				//nolint:errcheck
				w.Write(append(tooLargeBody, '\n'))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

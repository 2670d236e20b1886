package middleware

import (
	"net/http"
)

// DefaultMaxBodyBytes applies when MAX_BODY_BYTES is unset (1 MiB). Users and
// posts are at most a few hundred bytes of JSON, so this is generous.
const DefaultMaxBodyBytes = 1 << 20

// MaxBytes caps request bodies. A declared Content-Length over the cap gets a
// bodiless 413 before any handler runs. Chunked bodies are cut off at the cap,
// which the handlers see as malformed JSON and answer 400.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSAllowedMethods covers every method the users and posts routes accept.
var CORSAllowedMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}

// CORSAllowedHeaders is the set of request headers allowed for CORS.
var CORSAllowedHeaders = []string{"Accept", "Content-Type", "X-Request-Id"}

// CORS returns a middleware that answers preflight requests and sets CORS
// response headers for the given origins. When origins is empty the
// middleware is a no-op (same-origin only).
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: CORSAllowedMethods,
		AllowedHeaders: CORSAllowedHeaders,
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         86400,
	})
}

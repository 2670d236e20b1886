package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/crucial707/twitter-crud/internal/config"
	"github.com/crucial707/twitter-crud/internal/handlers"
	"github.com/crucial707/twitter-crud/internal/middleware"
	"github.com/crucial707/twitter-crud/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires the middleware stack, the operational endpoints and the
// /users and /posts route groups around the shared connection pool.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	codes := handlers.DefaultStatusCodes()
	if cfg.StatusCompat {
		codes = handlers.CompatStatusCodes()
	}

	userHandler := &handlers.UserHandler{Repo: repo.NewUserRepo(db), Codes: codes}
	postHandler := &handlers.PostHandler{Repo: repo.NewPostRepo(db), Codes: codes}

	// Writes are rate limited per client IP; a zero rate disables the limit.
	limitWrites := func(next http.Handler) http.Handler { return next }
	if cfg.WriteRatePerMinute > 0 {
		limitWrites = middleware.PerMinute(cfg.WriteRatePerMinute, cfg.WriteRateBurst).Middleware
	}
	requireJSON := chimw.AllowContentType("application/json")

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Get("/{username}", userHandler.GetUser)

		r.Group(func(r chi.Router) {
			r.Use(limitWrites)
			r.Use(requireJSON)
			r.Post("/", userHandler.CreateUser)
			r.Patch("/{username}", userHandler.UpdateUser)
			r.Delete("/", userHandler.DeleteUser)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.ListPosts)
		r.Get("/{id}", postHandler.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(limitWrites)
			r.Use(requireJSON)
			r.Post("/", postHandler.CreatePost)
			r.Delete("/{id}", postHandler.DeletePost)
		})
	})

	return r
}

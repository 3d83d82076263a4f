package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/just-nibble/commit-tracker/docs"
	"github.com/just-nibble/commit-tracker/internal/adapters/http/handlers"
)

// Options configures the router.
type Options struct {
	AllowAllOrigins bool
}

// NewRouter wires the page, API, health and swagger routes.
func NewRouter(page *handlers.PageHandler, commits *handlers.CommitHandler, opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if opts.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", page.Index)
	r.Post("/commits", page.SubmitCommits)
	r.Post("/contact", page.SubmitContact)
	r.Get("/api/commits", commits.GetCommits)

	// Serve Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// NewServer wraps the router in an http.Server. Write timeouts are left
// unset so a slow upstream is never cut off mid-render.
func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"intranet/internal/metrics"
)

// RouterConfig wires the resource services and the optional on-disk files
// directory into the HTTP surface.
type RouterConfig struct {
	Users      UserService
	Companies  ProfileService
	Associates ProfileService
	Events     EventService

	// FilesDir, when non-empty, is served read-only under /files so
	// disk-stored blob references resolve over HTTP.
	FilesDir string
}

func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(metrics.Middleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Intranet online"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	if cfg.FilesDir != "" {
		files := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.FilesDir)))
		r.Get("/files/*", files.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(httprate.Limit(
			100,
			1*time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		))
		r.Mount("/users", NewUserHandler(cfg.Users).Routes())
		r.Mount("/companies", NewProfileHandler(cfg.Companies, "Company").Routes())
		r.Mount("/events", NewEventHandler(cfg.Events).Routes())
		r.Mount("/associates", NewProfileHandler(cfg.Associates, "Associate").Routes())
	})

	return r
}

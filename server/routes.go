package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(s.rateLimit, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))
	r.Handle("/favicon.ico", s.serveFile("static/images/logo.svg"))

	// Long-lived, so it stays outside the request timeout.
	r.Get("/api/loading/stream", s.HandleLoadingStream)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.timeout))

		r.Get("/api/config", s.HandleConfig)
		r.Get("/api/routes", s.HandleRoutes)
		r.Get("/api/loading", s.HandleLoading)

		for _, route := range s.guard.Table().Routes() {
			r.Get(route.Path, s.HandleNavigate)
		}
	})

	// Unmatched spellings of known pages render here too, so they get the
	// same timeout as the registered routes.
	r.NotFound(middleware.Timeout(s.timeout)(http.HandlerFunc(s.HandleNavigate)).ServeHTTP)

	return r
}

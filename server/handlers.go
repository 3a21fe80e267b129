package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"mime"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/haruki1953/sakiko-utils/internal/models"
	"github.com/haruki1953/sakiko-utils/internal/navigation"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	site := s.currentSite()
	if err := s.tmplFunc(w, "error.html", models.PageData{Title: site.Name, BaseURL: s.url("/"), Site: site}); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

// HandleNavigate runs every page request through the navigation guard:
// unknown paths are redirected to the root, known ones are rendered with
// the guard's title.
func (s *Server) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	d := s.guard.BeforeTransition(r.URL.Path)
	defer s.guard.AfterTransition()

	if d.Redirect != "" {
		http.Redirect(w, r, s.url(d.Redirect), http.StatusMovedPermanently)
		return
	}

	body, ok := s.pages.GetPage(d.Route.Name)
	if !ok {
		var err error
		if body, err = s.renderPage(d); err != nil {
			slog.Error("Failed to render page", "route", d.Route.Name, "error", err)
			s.renderError(w, http.StatusInternalServerError)
			return
		}
	}

	// The timeout middleware answers for requests past their deadline.
	if r.Context().Err() != nil {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// renderPage renders and caches a page. It holds the site read lock so a
// concurrent SetSite cannot leave a page built from the old site cached.
func (s *Server) renderPage(d navigation.Decision) ([]byte, error) {
	s.siteMu.RLock()
	defer s.siteMu.RUnlock()

	d.Title = navigation.Title(d.Route.Meta.Title, s.site.Name)

	var buf bytes.Buffer
	if err := s.tmplFunc(&buf, d.Route.Name+".html", s.pageData(d, s.site)); err != nil {
		return nil, err
	}
	s.pages.SetPage(d.Route.Name, buf.Bytes())
	return buf.Bytes(), nil
}

func (s *Server) pageData(d navigation.Decision, site models.Site) models.PageData {
	contacts := make([]models.Contact, 0, len(site.Contacts))
	for _, key := range slices.Sorted(maps.Keys(site.Contacts)) {
		contacts = append(contacts, models.Contact{Key: key, LinkEntry: site.Contacts[key]})
	}

	base := s.baseURL
	if base != "/" {
		base += "/"
	}

	return models.PageData{
		Title:    d.Title,
		Route:    d.Route.Name,
		BaseURL:  base,
		Site:     site,
		Contacts: contacts,
		Year:     time.Now().Year(),
	}
}

func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	site := s.currentSite()
	s.writeJSON(w, models.ClientConfig{
		BaseURL:     s.baseURL,
		Timeout:     s.timeout.Milliseconds(),
		WebName:     site.Name,
		Logo:        site.Logo,
		ContactInfo: site.Contacts,
		AdConfig:    site.Ad,
	})
}

func (s *Server) HandleRoutes(w http.ResponseWriter, r *http.Request) {
	routes := s.guard.Table().Routes()
	out := make([]models.RouteInfo, 0, len(routes))
	for _, route := range routes {
		out = append(out, models.RouteInfo{
			Name:  route.Name,
			Path:  route.Path,
			Title: navigation.Title(route.Meta.Title, s.guard.SiteName()),
		})
	}
	s.writeJSON(w, out)
}

func (s *Server) HandleLoading(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]bool{"loading": s.loading.Value()})
}

// HandleLoadingStream pushes loading flag changes as server-sent events
// until the client goes away.
func (s *Server) HandleLoadingStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	updates, cancel := s.loading.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")

	writeEvent := func(v bool) {
		_, _ = fmt.Fprintf(w, "data: {\"loading\":%t}\n\n", v)
		flusher.Flush()
	}
	writeEvent(s.loading.Value())

	for {
		select {
		case <-r.Context().Done():
			return
		case v, ok := <-updates:
			if !ok {
				return
			}
			writeEvent(v)
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) serveFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(name)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

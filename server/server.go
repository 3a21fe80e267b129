package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/haruki1953/sakiko-utils/internal/cache"
	"github.com/haruki1953/sakiko-utils/internal/config"
	"github.com/haruki1953/sakiko-utils/internal/models"
	"github.com/haruki1953/sakiko-utils/internal/navigation"
	"github.com/haruki1953/sakiko-utils/internal/state"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Server struct {
	version   string
	port      string
	baseURL   string
	timeout   time.Duration
	rateLimit int
	server    *http.Server
	assets    http.FileSystem
	tmplFunc  ExecuteTemplateFunc
	siteMu    sync.RWMutex
	site      models.Site
	guard     *navigation.Guard
	loading   *state.Loading
	pages     *cache.Cache
}

func NewServer(version string, cfg config.Config, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, site models.Site) *Server {
	loading, writer := state.NewLoading()
	table := navigation.NewTable(navigation.DefaultRoutes())

	s := &Server{
		version:   version,
		port:      cfg.Port,
		baseURL:   config.NormalizeBaseURL(cfg.BaseURL),
		timeout:   cfg.Timeout,
		rateLimit: cfg.RateLimit,
		assets:    assets,
		tmplFunc:  tmplFunc,
		guard:     navigation.NewGuard(table, site.Name, writer),
		loading:   loading,
		pages:     cache.NewCache(cfg.CacheTTL),
	}
	s.site = s.placeAssets(site)

	s.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: cfg.Timeout,
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

// SetSite swaps the site content and drops every rendered page built from
// the old one.
func (s *Server) SetSite(site models.Site) {
	site = s.placeAssets(site)

	s.siteMu.Lock()
	s.site = site
	s.guard.SetSiteName(site.Name)
	s.pages.InvalidateAll()
	s.siteMu.Unlock()
}

func (s *Server) currentSite() models.Site {
	s.siteMu.RLock()
	defer s.siteMu.RUnlock()
	return s.site
}

func (s *Server) placeAssets(site models.Site) models.Site {
	site.Logo = s.assetURL(site.Logo)
	site.Ad.Image = s.assetURL(site.Ad.Image)
	return site
}

// Handler returns the site router, mounted below the base URL when one is
// configured. Paths outside the base URL are sent to the site root.
func (s *Server) Handler() http.Handler {
	h := s.Routes()
	if s.baseURL == "/" {
		return h
	}
	stripped := http.StripPrefix(s.baseURL, h)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != s.baseURL && !strings.HasPrefix(r.URL.Path, s.baseURL+"/") {
			http.Redirect(w, r, s.url(navigation.Root), http.StatusMovedPermanently)
			return
		}
		stripped.ServeHTTP(w, r)
	})
}

// url prefixes an in-site path with the base URL.
func (s *Server) url(p string) string {
	if s.baseURL == "/" {
		return p
	}
	return s.baseURL + p
}

// assetURL places site-absolute asset paths below the base URL and leaves
// everything else alone.
func (s *Server) assetURL(p string) string {
	if strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") {
		return s.url(p)
	}
	return p
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}

package main

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/haruki1953/sakiko-utils/internal/config"
	"github.com/haruki1953/sakiko-utils/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static
var staticFiles embed.FS

func main() {

	var (
		tmplFunc server.ExecuteTemplateFunc
		assets   http.FileSystem
	)

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	site, err := config.LoadSite(cfg.SiteFile)
	if err != nil {
		panic(fmt.Errorf("failed to load site: %w", err))
	}

	tmpl, err := template.New("").ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}
	tmplFunc = tmpl.ExecuteTemplate
	assets = http.FS(staticFiles)

	srv := server.NewServer(version, cfg, assets, tmplFunc, site)

	go srv.Start()
	defer srv.Close()

	slog.Info("Started server",
		slog.String("listen_addr", ":"+cfg.Port),
		slog.String("base_url", cfg.BaseURL),
		slog.String("site", site.Name),
		slog.String("build", server.FormatBuildVersion(version)),
	)
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)
	for sig := range si {
		if sig != syscall.SIGHUP {
			break
		}
		// SIGHUP re-reads the site file; a bad file keeps the current site.
		site, err := config.LoadSite(cfg.SiteFile)
		if err != nil {
			slog.Error("Failed to reload site", "error", err)
			continue
		}
		srv.SetSite(site)
		slog.Info("Reloaded site", slog.String("site", site.Name))
	}
	slog.Info("Shutting down server")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"

	"github.com/dmitrymomot/envbadge"
	"github.com/dmitrymomot/envbadge/pkg/dom/memdom"
	"github.com/dmitrymomot/envbadge/pkg/environment"
	"github.com/dmitrymomot/envbadge/pkg/httpserver"
	"github.com/dmitrymomot/envbadge/pkg/logger"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>envbadge demo</title>
</head>
<body>
<h1>envbadge demo</h1>
<p>This page was served as <strong>{{.Environment}}</strong> for host <code>{{.Hostname}}</code>.</p>
<p>The badge below was rendered server-side; click it (or focus it and press Enter) in a live integration to dismiss it.</p>
{{.Badge}}
</body>
</html>
`))

type pageData struct {
	Environment environment.Environment
	Hostname    string
	Badge       template.HTML
}

func main() {
	if err := run(); err != nil {
		logger.New(logger.WithDevelopment("envbadge-demo")).Error("demo server failed", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg httpserver.Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse server config: %w", err)
	}

	opts, err := envbadge.FromEnv()
	if err != nil {
		return fmt.Errorf("load badge options: %w", err)
	}

	// The server's own environment, detected from process signals only.
	serverEnv := envbadge.New(opts...).CurrentEnvironment()

	// Log format and level follow the environment the server runs in.
	log := logger.New(
		logger.WithEnvironment(serverEnv, "envbadge-demo"),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(serverEnv))
	r.Use(requestLogger(log))

	r.Get("/", demoPage(opts, log))
	r.Get("/api/environment", currentEnvironment(opts))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ALIVE"))
	})

	srv := httpserver.New(cfg, httpserver.WithLogger(log))
	return srv.Run(context.Background(), r)
}

// demoPage renders the landing page with the badge baked in server-side: the
// indicator initializes into an in-memory document seeded with the request's
// hostname, and the resulting element is serialized into the page.
func demoPage(opts []envbadge.Option, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hostname := requestHostname(r)
		win := memdom.NewWindow(
			memdom.WithHostname(hostname),
			memdom.WithUserAgent(r.UserAgent()),
		)

		// Clip forces the per-request append onto a fresh backing array;
		// concurrent handlers must not share spare capacity in opts.
		badge := envbadge.New(append(slices.Clip(opts), envbadge.WithWindow(win))...)
		badge.Init()
		defer badge.Destroy()

		data := pageData{
			Environment: badge.CurrentEnvironment(),
			Hostname:    hostname,
		}
		if el, ok := win.Document().ElementByID(envbadge.DefaultElementID); ok {
			data.Badge = template.HTML(memdom.Render(el.(*memdom.Element))) //nolint:gosec // memdom escapes attribute and text content
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, data); err != nil {
			log.ErrorContext(r.Context(), "render demo page", logger.Error(err))
		}
	}
}

// currentEnvironment reports the environment the badge would resolve for the
// requesting host.
func currentEnvironment(opts []envbadge.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win := memdom.NewWindow(memdom.WithHostname(requestHostname(r)))
		badge := envbadge.New(append(slices.Clip(opts), envbadge.WithWindow(win))...)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"environment": badge.CurrentEnvironment().String(),
		})
	}
}

func requestHostname(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

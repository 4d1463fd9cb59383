// Command frontend is the placeholder storefront. It serves a static HTML
// page pointing at the API base URL the task was configured with, so a
// deployment can be verified end to end before the real storefront exists.
package main

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port       string `env:"PORT" env-default:"3000"`
	APIBaseURL string `env:"API_BASE_URL" env-default:"http://localhost:4000/api"`
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Ecommerce Platform</title></head>
<body>
  <h1>Ecommerce Platform</h1>
  <p>Placeholder storefront. The real application ships as a container
  image through the FrontendImage parameter.</p>
  <p>API base URL: <a href="{{.APIBaseURL}}">{{.APIBaseURL}}</a></p>
</body>
</html>
`))

func newRouter(config Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{"service": "frontend", "status": "ok"})
	})

	// Everything else renders the storefront page, mirroring how the load
	// balancer sends all unmatched paths here.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, config); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	})

	return r
}

func main() {
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("reading configuration", "err", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%s", config.Port)
	slog.Info("frontend listening", "addr", addr, "api_base_url", config.APIBaseURL)

	if err := http.ListenAndServe(addr, newRouter(config)); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

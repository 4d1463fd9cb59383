// Command backend is the placeholder API service. It answers every /api
// path with a JSON document showing which container served the request and
// the database coordinates it was wired with.
//
// Connection coordinates arrive as plain environment variables; the
// credentials are injected by the task runtime. The password is read by a
// real application to open its database pool, never echoed back, and this
// placeholder does not read it at all.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port string `env:"PORT" env-default:"4000"`
	DB   DbConfig
}

type DbConfig struct {
	Host string `env:"DB_HOST" env-default:"localhost"`
	Port string `env:"DB_PORT" env-default:"3306"`
	Name string `env:"DB_NAME" env-default:"ecommerce"`
	User string `env:"DB_USERNAME" env-default:""`
}

// statusResponse is the JSON body for every successful response.
type statusResponse struct {
	Service  string   `json:"service"`
	Status   string   `json:"status"`
	Path     string   `json:"path"`
	Database dbStatus `json:"database"`
}

type dbStatus struct {
	Host string `json:"host"`
	Port string `json:"port"`
	Name string `json:"name"`
	User string `json:"user"`
}

func newRouter(config Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	respond := func(w http.ResponseWriter, req *http.Request) {
		render.Status(req, http.StatusOK)
		render.JSON(w, req, statusResponse{
			Service: "backend",
			Status:  "ok",
			Path:    req.URL.Path,
			Database: dbStatus{
				Host: config.DB.Host,
				Port: config.DB.Port,
				Name: config.DB.Name,
				User: config.DB.User,
			},
		})
	}

	r.Get("/", respond)
	r.Get("/health", respond)
	r.Route("/api", func(r chi.Router) {
		r.Get("/", respond)
		r.Get("/health", respond)
		r.Get("/*", respond)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		render.Status(req, http.StatusNotFound)
		render.JSON(w, req, map[string]string{
			"service": "backend",
			"error":   "not found",
			"path":    req.URL.Path,
		})
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
	slog.Info("backend listening", "addr", addr,
		"db_host", config.DB.Host, "db_name", config.DB.Name)

	if err := http.ListenAndServe(addr, newRouter(config)); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

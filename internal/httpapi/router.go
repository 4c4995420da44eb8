// Package httpapi assembles the HTTP router: health probes, metrics, the
// workbook export and the mounted RPC services.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/photobill/internal/auth"
)

// Mount is an RPC handler and the path prefix it serves.
type Mount struct {
	Path    string
	Handler http.Handler
}

// Options configure NewRouter.
type Options struct {
	// JWT guards the REST API when set.
	JWT    *auth.JWTManager
	Logger *slog.Logger
	Mounts []Mount
}

func NewRouter(handler *Handler, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(CORS)

	r.Get("/healthz", handler.Health)
	r.Get("/readyz", handler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RequireBearer(opts.JWT))
		r.Get("/export.xlsx", handler.ExportWorkbook)
	})

	for _, m := range opts.Mounts {
		r.Mount(m.Path, m.Handler)
	}

	return r
}

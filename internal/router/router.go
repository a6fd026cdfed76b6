package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "dog-registry/docs" // registra el doc de swag
	"dog-registry/internal/domain/dogs"
	"dog-registry/internal/middleware"
	"dog-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Registry *dogs.Registry
	Logger   logger.Logger // puede ser nil

	// StaticDir vacío => no se sirven assets.
	StaticDir string

	// Docs expone /swagger/*.
	Docs bool

	// RequestTimeout > 0 corta el context de cada request.
	RequestTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", healthHandler(opts.Registry, log))

	// Rutas por módulo
	dogs.RegisterRoutes(r, opts.Registry, log)

	if opts.Docs {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	if dir := strings.TrimSpace(opts.StaticDir); dir != "" {
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}

	return r
}

// healthHandler godoc
// @Summary Health check
// @Description Responde ok y la cantidad de perros. 503 si el store no responde.
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok dogs=N"
// @Failure 503 {string} string "storage unavailable"
// @Router /health [get]
func healthHandler(reg *dogs.Registry, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := reg.Count(r.Context())
		if err != nil {
			log.Warn("health check failed", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"error":      err.Error(),
			})
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "ok dogs=%d", n)
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"showcase/api/internal/logging"
	"showcase/api/internal/store"
)

// NewRouter wires the read endpoints over s. The router never writes to s.
func NewRouter(s store.Store, log zerolog.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(log))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	r.Get(ToolsPath, ListToolsHandler(s, log))
	r.Get(IndustrySectorsPath, ListIndustrySectorsHandler(s, log))
	r.Get(HealthPath, HealthHandler(s, log))
	return r
}

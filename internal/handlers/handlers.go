package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"showcase/api/internal/store"
)

// Paths served by the content API.
const (
	ToolsPath           = "/api/tools"
	IndustrySectorsPath = "/api/industry-sectors"
	HealthPath          = "/healthz"
)

type errorResponse struct {
	Error string `json:"error"`
}

func ListToolsHandler(s store.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := s.ListTools(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list tools")
			writeError(w, http.StatusInternalServerError, "failed to list tools")
			return
		}
		writeJSON(w, http.StatusOK, tools)
	}
}

func ListIndustrySectorsHandler(s store.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectors, err := s.ListIndustrySectors(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list industry sectors")
			writeError(w, http.StatusInternalServerError, "failed to list industry sectors")
			return
		}
		writeJSON(w, http.StatusOK, sectors)
	}
}

func HealthHandler(s store.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			log.Warn().Err(err).Msg("health check failed")
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

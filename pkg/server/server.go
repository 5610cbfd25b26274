// Package server exposes the search compiler as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/query"
	"github.com/pluqqy/microcomp/pkg/suggest"
	"github.com/pluqqy/microcomp/pkg/vocab"
)

const shutdownTimeout = 5 * time.Second

// Server serves the compiler endpoints
type Server struct {
	router    *mux.Router
	settings  models.Settings
	registry  *vocab.Registry
	suggester *suggest.Suggester
	builder   *query.Builder
	log       zerolog.Logger
}

// New creates a server using the vocabulary in registry
func New(settings models.Settings, registry *vocab.Registry, log zerolog.Logger) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		settings:  settings,
		registry:  registry,
		suggester: suggest.New(registry, settings.UI.MaxSuggestions),
		builder:   query.NewBuilder(log),
		log:       log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Full paths on the root router so a method mismatch answers 405
	s.router.HandleFunc("/api/split", s.handleSplit).Methods(http.MethodPost)
	s.router.HandleFunc("/api/parse", s.handleParse).Methods(http.MethodPost)
	s.router.HandleFunc("/api/autocomplete", s.handleAutocomplete).Methods(http.MethodPost)
	s.router.HandleFunc("/api/values", s.handleValues).Methods(http.MethodPost)
	s.router.HandleFunc("/api/query", s.handleQuery).Methods(http.MethodPost)
	s.router.HandleFunc("/api/suggest", s.handleSuggest).Methods(http.MethodGet)
}

// Handler returns the HTTP handler with all routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info().Msg("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

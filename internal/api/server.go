// Package api exposes the local HTTP interface the UI process consumes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pverhoeven/tubelens/internal/engine"
	idgen "github.com/pverhoeven/tubelens/internal/id/uuid"
	"github.com/pverhoeven/tubelens/internal/metrics"
	"github.com/pverhoeven/tubelens/internal/tube"
)

// Server wires HTTP handlers to the extraction engine.
type Server struct {
	router chi.Router
	engine *engine.Engine
	guard  *engine.Guard
	logger *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(eng *engine.Engine, logger *zap.Logger) *Server {
	s := &Server{engine: eng, guard: engine.NewGuard(idgen.New()), logger: logger}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(timeoutMiddleware(60 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/videos/{id}", s.getVideo)
		r.Get("/channels/{id}", s.getChannel)
		r.Get("/playlists/{id}", s.getPlaylist)
		r.Get("/playlists/{id}/items", s.getPlaylistItems)
		r.Get("/search", s.search)
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	v, err := s.engine.Video(r.Context(), id, localeFrom(r))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"video": v})
}

func (s *Server) getChannel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := s.engine.Channel(r.Context(), id, localeFrom(r))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"channel": c})
}

func (s *Server) getPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.engine.Playlist(r.Context(), id, localeFrom(r))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"playlist": p})
}

func (s *Server) getPlaylistItems(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	items, err := s.engine.PlaylistItems(r.Context(), id, localeFrom(r), limitFrom(r, 100))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	// Each search supersedes every earlier one. A slow response whose token
	// is no longer current arrives marked superseded, so the UI drops it
	// instead of painting stale results over a newer query.
	token, err := s.guard.Issue()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	results, err := s.engine.Search(r.Context(), query, localeFrom(r), limitFrom(r, 20))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":    results,
		"superseded": !s.guard.Valid(token),
	})
}

// writeEngineError maps the failure taxonomy onto HTTP statuses. Absence is
// a 404 the UI renders as an empty state; upstream trouble is a 502 the UI
// may retry with backoff.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tube.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, tube.ErrNetwork), errors.Is(err, tube.ErrMalformedData):
		s.logger.Warn("upstream failure", zap.Error(err))
		writeError(w, http.StatusBadGateway, "upstream failure")
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func localeFrom(r *http.Request) tube.Locale {
	q := r.URL.Query()
	return tube.Locale{Hl: q.Get("hl"), Gl: q.Get("gl")}
}

func limitFrom(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", zap.Any("error", rec))
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

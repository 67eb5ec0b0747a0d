// Package server exposes the classifier over HTTP for an external
// presentation shell. The shell owns rendering; this API owns inference,
// the category table, and the canned examples, so any frontend sees the
// same contract the CLI does.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Isaac25-lgtm/hickory/internal/category"
	"github.com/Isaac25-lgtm/hickory/internal/classify"
	"github.com/Isaac25-lgtm/hickory/internal/model"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server routes classification requests to a shared inference pipeline.
// The pipeline holds no per-call state, so one Server instance handles
// concurrent requests without additional locking.
type Server struct {
	pipeline *classify.Pipeline
	meta     model.Meta
}

// New builds a Server over a loaded model bundle.
func New(bundle *model.Bundle) *Server {
	return &Server{
		pipeline: classify.New(bundle),
		meta:     bundle.Meta,
	}
}

// Handler returns the HTTP handler with all API routes registered.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.POST("/api/v1/classify", s.handleClassify)
	router.GET("/api/v1/categories", s.handleCategories)
	router.GET("/api/v1/examples", s.handleExamples)
	router.GET("/healthz", s.handleHealth)
	return router
}

// ListenAndServe runs the API server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Debug("API server listening", "addr", addr, "backend", s.meta.Backend)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

// classifyRequest is the body of POST /api/v1/classify.
type classifyRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := s.pipeline.Classify(req.Text)
	if err != nil {
		// blank input is a user-visible warning, not a server failure
		if errors.Is(err, classify.ErrEmptyInput) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		slog.Warn("Classification failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "classification failed"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// categoryEntry mirrors one row of the display table.
type categoryEntry struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	infos := category.All()
	entries := make([]categoryEntry, len(infos))
	for i, info := range infos {
		entries[i] = categoryEntry{Label: info.Label, Description: info.Description}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": entries})
}

func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{"examples": classify.Examples()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": s.meta.Backend,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

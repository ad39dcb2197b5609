package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/rmonteiro/fuel-data/internal/analytics"
	"github.com/rmonteiro/fuel-data/internal/config"
	"github.com/rmonteiro/fuel-data/internal/ingest"
	"github.com/rmonteiro/fuel-data/internal/normalize"
)

// Pinger reports backend health. A nil Pinger marks the backend as
// always reachable (memory store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server handles the analyzer's HTTP API.
type Server struct {
	cfg    config.ServerConfig
	merger *ingest.Merger
	engine *analytics.Engine
	db     Pinger
	logger *slog.Logger
}

// New creates a Server.
func New(cfg config.ServerConfig, merger *ingest.Merger, engine *analytics.Engine, db Pinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		merger: merger,
		engine: engine,
		db:     db,
		logger: logger,
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}{
		Status:     "healthy",
		Components: make(map[string]string),
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["database"] = "disconnected: " + err.Error()
		} else {
			health.Components["database"] = "connected"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if health.Status == "unhealthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(health)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.engine.Dashboard(r.Context())
	if errors.Is(err, analytics.ErrEmptyDataset) {
		writeJSON(w, http.StatusOK, map[string]any{"empty": true})
		return
	}
	if err != nil {
		s.logger.Error("dashboard computation failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "dataset unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"empty": false, "dashboard": d})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.UploadMaxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "no file in request"})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "only .csv files are accepted"})
		return
	}

	batch, err := normalize.Read(file)
	if err != nil {
		s.logger.Warn("upload rejected", "file", header.Filename, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unreadable survey file"})
		return
	}

	report, err := s.merger.Merge(r.Context(), batch)
	if err != nil {
		s.logger.Error("ingestion failed", "file", header.Filename, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "ingestion failed, no rows were stored"})
		return
	}

	s.logger.Info("file uploaded",
		"file", header.Filename,
		"new", report.New,
		"duplicate", report.Duplicate,
	)
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

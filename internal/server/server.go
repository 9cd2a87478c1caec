// Package server implements the HTTP host for the drawing file
// operations.
//
// The desktop application talks to the core through four commands; this
// server exposes the same four boundary operations over HTTP so any local
// frontend can drive them:
//
//	POST /v1/files/save   {"path": ..., "data": ...}
//	POST /v1/files/load   {"path": ...}
//	POST /v1/dxf/export   {"path": ..., "shapes_json": ...}
//	POST /v1/dxf/import   {"path": ...}
//
// Operation outcomes always answer 200: the result body's success flag is
// the contract, mirroring what an in-process host would receive. HTTP
// error statuses are reserved for transport problems (unreadable request
// body, wrong method).
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/drafterhq/drafter/pkg/drawing"
)

// Server hosts the drawing file operations over HTTP.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New creates a server with its routes and middleware configured.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/files/save", s.handleSave)
		r.Post("/files/load", s.handleLoad)
		r.Post("/dxf/export", s.handleExport)
		r.Post("/dxf/import", s.handleImport)
	})

	s.router = r
	return s
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, draining in-flight requests for up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// saveRequest is the body for /v1/files/save.
type saveRequest struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

// pathRequest is the body for the operations that only take a path.
type pathRequest struct {
	Path string `json:"path"`
}

// exportRequest is the body for /v1/dxf/export.
type exportRequest struct {
	Path       string `json:"path"`
	ShapesJSON string `json:"shapes_json"`
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, drawing.SaveFile(req.Path, req.Data))
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, drawing.LoadFile(req.Path))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, drawing.ExportDXF(req.Path, req.ShapesJSON))
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, drawing.ImportDXF(req.Path))
}

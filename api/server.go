package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"novelpub/pipeline"
	"novelpub/storage"
	"novelpub/text"

	"go.uber.org/zap"
)

// maxUploadBytes bounds a single conversion request body.
const maxUploadBytes = 64 << 20

// Server represents the API server
type Server struct {
	loader    *text.Core
	converter *pipeline.Converter
	store     storage.Store
	logger    *zap.Logger
	srv       *http.Server
}

// NewServer creates a new API server
func NewServer(port int, loader *text.Core, converter *pipeline.Converter, store storage.Store, logger *zap.Logger) *Server {
	s := &Server{
		loader:    loader,
		converter: converter,
		store:     store,
		logger:    logger,
	}
	s.srv = &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routes of the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/convert", s.ConvertHandler)
	mux.HandleFunc("GET /api/conversions", s.ListHandler)
	mux.HandleFunc("GET /api/conversions/{id}", s.GetHandler)
	mux.HandleFunc("GET /api/conversions/{id}/preview", s.PreviewHandler)
	mux.HandleFunc("DELETE /api/conversions/{id}", s.DeleteHandler)

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}

// Start serves until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

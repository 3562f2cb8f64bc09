// Package web serves the prediction form and a JSON endpoint over HTTP.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/passcheck/internal/predict"
	"github.com/abhisek/passcheck/internal/student"
)

const shutdownTimeout = 5 * time.Second

// Predictor scores one record.
type Predictor interface {
	Predict(r student.Record) (predict.Result, error)
}

// Server wires the gin engine to a Predictor.
type Server struct {
	predictor Predictor
	logger    *slog.Logger
	engine    *gin.Engine
}

// NewServer builds the engine and registers all routes. A nil logger
// falls back to slog.Default().
func NewServer(p Predictor, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{predictor: p, logger: logger}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", s.showForm)
	r.POST("/", s.submitForm)
	r.POST("/api/predict", s.predictJSON)
	r.GET("/healthz", s.healthz)

	s.engine = r
	return s
}

// Handler returns the HTTP handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

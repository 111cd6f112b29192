package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/fatturapa/converter"
	"github.com/theoremus-urban-solutions/fatturapa/internal"
)

// maxBodyBytes bounds a single document upload.
const maxBodyBytes = 1 << 20

// Server exposes the codec over HTTP.
type Server struct {
	conv *converter.Converter
	log  zerolog.Logger
	addr string
}

// New creates a server listening on port.
func New(conv *converter.Converter, port int) *Server {
	return &Server{
		conv: conv,
		log:  internal.WithComponent("server"),
		addr: fmt.Sprintf(":%d", port),
	}
}

// Router returns the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestID,
		s.accessLog,
		middleware.Recoverer,
		middleware.Timeout(30*time.Second),
	)

	r.Get("/api/health", handleHealth)
	r.Post("/api/fatturapa.xml", s.handleRender)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", s.addr).Msg("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.log.Info().Msg("server shut down successfully")
	return nil
}

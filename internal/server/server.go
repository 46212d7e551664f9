package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Server represents the HTTP server
type Server struct {
	http            *http.Server
	listener        net.Listener
	logger          zerolog.Logger
	shutdownTimeout time.Duration
}

// New creates a server that will listen on addr once started
func New(addr string, handler http.Handler, shutdownTimeout time.Duration, logger zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start binds the listener and serves in the background. Runtime failures
// are delivered on the returned channel, which is closed once serving stops.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	s.listener = ln

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
	return errCh, nil
}

// Addr returns the bound address, or the configured one before Start
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Run starts the server and blocks until ctx is cancelled or serving fails,
// then shuts down within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	errCh, err := s.Start()
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case err, ok := <-errCh:
			if ok && err != nil {
				s.logger.Error().Err(err).Msg("server runtime error")
				return fmt.Errorf("server: %w", err)
			}
			return nil
		case <-gCtx.Done():
			return nil
		}
	})
	runtimeErr := g.Wait()

	s.logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if runtimeErr != nil {
		errs = append(errs, runtimeErr)
	}
	if err := s.Stop(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("server shutdown failed")
		errs = append(errs, fmt.Errorf("shutdown: %w", err))
	}

	return errors.Join(errs...)
}

package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPServer runs the router on a TCP listener
type HTTPServer struct {
	server          *http.Server
	listenAddress   string
	shutdownTimeout time.Duration
	logger          *zap.Logger
	listener        net.Listener
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(handler http.Handler, listenAddress string, shutdownTimeout time.Duration, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		listenAddress:   listenAddress,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Start binds the listen address and serves in the background
func (s *HTTPServer) Start() error {
	listener, err := net.Listen("tcp", s.listenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listenAddress, err)
	}
	s.listener = listener

	s.logger.Info("HTTP server started", zap.String("address", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()
	return nil
}

// Addr returns the bound address, or nil before Start
func (s *HTTPServer) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop waits up to the shutdown timeout for in-flight requests to finish
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

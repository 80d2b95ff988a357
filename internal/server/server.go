package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
}

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	// No write timeout: /events and /ws responses stay open for the whole
	// session and end on client disconnect or shutdown.
	writeTimeout = 0
	idleTimeout  = 60 * time.Second

	defaultPort = "5000"
)

// New builds the server for port and handler. It does not listen yet, so
// Shutdown is safe to call at any point after New.
func New(port string, handler http.Handler) *Server {
	return &Server{httpServer: newHTTPServer(normalizeAddr(port), handler)}
}

// newHTTPServer builds a configured *http.Server for the given address and handler.
// Every request context derives from a base context that Shutdown cancels,
// which is what ends open streams.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}

// normalizeAddr accepts "5000", ":5000" or "host:5000". Empty means the default port.
func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = defaultPort
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// Run listens on the configured address and serves until Shutdown.
// It returns nil after a graceful Shutdown.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener; see Run.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, cancels the context of every
// in-flight request and waits for the handlers to return.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

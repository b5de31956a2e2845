package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

var ErrServerStopped = errors.New("http server stopped")

const shutdownTimeout = 5 * time.Second

// HTTPServer serves Handler until Stop is called or the Start context ends.
// A stopped server cannot be restarted.
type HTTPServer struct {
	// Addr is the requested address before Start and the bound one after,
	// so ":0" resolves to a real port.
	Addr    string
	DevMode bool
	Handler http.Handler

	mu      sync.Mutex
	srv     *http.Server
	stopped bool
}

func NewHTTPServer(cfg ServerConfig) *HTTPServer {
	return &HTTPServer{Addr: cfg.ListenAddr, DevMode: cfg.DevMode}
}

func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.stopped:
		return ErrServerStopped
	case s.srv != nil:
		return nil
	}

	handler := s.Handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	if s.DevMode {
		handler = WithDevCORS(handler)
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	s.Addr = ln.Addr().String()
	s.srv = &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	go func(srv *http.Server) {
		// Serve returns ErrServerClosed after Shutdown; the listener is
		// closed by then either way.
		_ = srv.Serve(ln)
	}(s.srv)
	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()
	return nil
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.stopped = true
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

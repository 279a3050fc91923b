package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cortex/favicons/internal/logging"
)

// HTTPServer serves freshly rendered icons for previewing.
type HTTPServer struct {
	Addr    string
	DevMode bool
	// MaxSize caps on-demand renders served by the default handler.
	MaxSize int

	// Handler defaults to NewDefaultMux with no targets when nil.
	Handler http.Handler
	Logger  logging.Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	stopCh chan struct{}
	closed bool
}

func NewHTTPServer(cfg ServerConfig) *HTTPServer {
	cfg = cfg.withDefaults()
	return &HTTPServer{Addr: cfg.ListenAddr, DevMode: cfg.DevMode, MaxSize: cfg.MaxSize, Logger: logging.NoopLogger{}}
}

// Start listens and serves in the background. The server stops when ctx is
// done or Stop is called.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}
	if s.Logger == nil {
		s.Logger = logging.NoopLogger{}
	}

	handler := s.Handler
	if handler == nil {
		handler = NewDefaultMux(APIV1Config{MaxSize: s.MaxSize, Logger: s.Logger})
	}
	if s.DevMode {
		handler = WithDevCORS(handler)
	}

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	s.ln = ln
	// Reflect the bound port when listening on ":0".
	s.Addr = ln.Addr().String()

	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Stop()
		case <-stopCh:
		}
	}()

	srv := s.srv
	logger := s.Logger
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logger.Errorf("web", "serve: %v", err)
	}()

	return nil
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Package callback receives the OAuth authorization-code redirect on a
// loopback address so the CLI can finish the login flow unattended.
package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrStateMismatch is returned when the redirect carries a state value other
// than the one the flow was started with.
var ErrStateMismatch = errors.New("oauth state mismatch")

// Result is the outcome of one redirect.
type Result struct {
	Code  string
	State string
	Err   error
}

// Server is a single-use redirect receiver.
type Server struct {
	path          string
	expectedState string
	logger        *zap.Logger

	once    sync.Once
	results chan Result

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
}

// New creates a Server that accepts GET requests on path and checks that
// their state parameter equals expectedState.
func New(path, expectedState string, logger *zap.Logger) *Server {
	if path == "" {
		path = "/callback"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		path:          path,
		expectedState: expectedState,
		logger:        logger,
		results:       make(chan Result, 1),
	}
}

// Handler returns the gin engine serving the redirect path.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(s.path, s.handle)
	return r
}

func (s *Server) handle(c *gin.Context) {
	if e := c.Query("error"); e != "" {
		desc := c.Query("error_description")
		s.deliver(Result{Err: fmt.Errorf("authorization denied: %s: %s", e, desc)})
		c.String(http.StatusBadRequest, "Authorization failed: %s. You can close this window.", desc)
		return
	}

	state := c.Query("state")
	if state != s.expectedState {
		s.logger.Warn("oauth callback state mismatch")
		s.deliver(Result{Err: ErrStateMismatch})
		c.String(http.StatusBadRequest, "Authorization failed: invalid state. You can close this window.")
		return
	}

	code := c.Query("code")
	if code == "" {
		s.deliver(Result{Err: errors.New("no authorization code received")})
		c.String(http.StatusBadRequest, "Authorization failed: no code received. You can close this window.")
		return
	}

	s.deliver(Result{Code: code, State: state})
	c.String(http.StatusOK, "Authorization complete. You can close this window and return to the terminal.")
}

// deliver records the first outcome only; later redirects are ignored.
func (s *Server) deliver(r Result) {
	s.once.Do(func() {
		s.results <- r
	})
}

// Start listens on addr (e.g. "127.0.0.1:8976") and serves in the
// background. It returns the bound address, useful when addr ends in ":0".
func (s *Server) Start(addr string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("callback server", zap.Error(err))
			s.deliver(Result{Err: err})
		}
	}()
	s.logger.Debug("callback server listening", zap.String("addr", ln.Addr().String()), zap.String("path", s.path))
	return ln.Addr().String(), nil
}

// Wait blocks until the redirect arrives or ctx is done.
func (s *Server) Wait(ctx context.Context) (string, error) {
	select {
	case r := <-s.results:
		return r.Code, r.Err
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for authorization callback: %w", ctx.Err())
	}
}

// Stop shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

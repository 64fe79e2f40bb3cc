package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/getmockd/stagehttpd/pkg/logging"
)

// DefaultShutdownTimeout bounds how long Start waits for the in-flight
// response once a stop has been requested.
const DefaultShutdownTimeout = 5 * time.Second

var (
	// ErrServerStarted is returned by Start on a Server that was already started.
	ErrServerStarted = errors.New("server already started")

	// ErrServerStopped is returned by Start when a stop was requested before it ran.
	ErrServerStopped = errors.New("server already stopped")
)

// Server serves handler on a single address until it is asked to stop.
type Server struct {
	addr            string
	handler         http.Handler
	log             *slog.Logger
	listener        net.Listener
	shutdownTimeout time.Duration

	running  atomic.Bool
	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	ready    chan struct{}

	mu    sync.RWMutex
	bound net.Addr
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithListener makes the server use ln instead of binding its address.
func WithListener(ln net.Listener) Option {
	return func(s *Server) {
		s.listener = ln
	}
}

// WithShutdownTimeout overrides DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New creates a Server for addr ("host:port"; an empty host binds every interface).
func New(addr string, handler http.Handler, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		handler:         handler,
		log:             logging.Nop(),
		shutdownTimeout: DefaultShutdownTimeout,
		stopCh:          make(chan struct{}),
		ready:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start binds the address and serves until RequestStop is called or ctx is
// cancelled. It returns nil after a graceful stop.
func (s *Server) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrServerStarted
	}
	select {
	case <-s.stopCh:
		return ErrServerStopped
	default:
	}

	ln := s.listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", s.addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %q: %w", s.addr, err)
		}
	}

	s.running.Store(true)
	ln = &gateListener{Listener: netutil.LimitListener(ln, 1), running: &s.running}

	s.mu.Lock()
	s.bound = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	httpServer := &http.Server{Handler: s.handler}
	httpServer.SetKeepAlivesEnabled(false)

	host, port := splitAddr(ln.Addr())
	if isAllInterfaces(ln.Addr()) {
		s.log.Warn("listening on all interfaces; the server is reachable from other hosts", "addr", ln.Addr().String())
	}
	s.log.Info("starting local server", "port", port)
	s.log.Info("to shut down send", "url", ShutdownURL(host, port))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := httpServer.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if errors.Is(err, net.ErrClosed) && !s.running.Load() {
			return nil
		}
		return err
	})
	g.Go(func() error {
		select {
		case <-s.stopCh:
		case <-gctx.Done():
			s.running.Store(false)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.log.Info("shutting down local server", "port", port)
	return err
}

// RequestStop marks the server stopped. The response currently being
// written is not interrupted; no further connection is served.
func (s *Server) RequestStop() {
	s.running.Store(false)
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Running reports whether the server is accepting connections. It is false
// until Start binds, and false again once a stop has been requested.
func (s *Server) Running() bool {
	return s.running.Load()
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, or nil before Start has bound it.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bound
}

// ShutdownURL returns the URL that stops a server bound to host and port.
// Unspecified hosts are reached through localhost.
func ShutdownURL(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/?quit=1"
}

func splitAddr(addr net.Addr) (string, int) {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		host, portStr, err := net.SplitHostPort(addr.String())
		if err != nil {
			return "", 0
		}
		port, _ := strconv.Atoi(portStr)
		return host, port
	}
	if tcpAddr.IP == nil || tcpAddr.IP.IsUnspecified() {
		return "", tcpAddr.Port
	}
	return tcpAddr.IP.String(), tcpAddr.Port
}

func isAllInterfaces(addr net.Addr) bool {
	host, _ := splitAddr(addr)
	return host == ""
}

// gateListener refuses connections once the server has stopped running.
type gateListener struct {
	net.Listener
	running *atomic.Bool
}

func (l *gateListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	if !l.running.Load() {
		_ = conn.Close()
		return nil, net.ErrClosed
	}
	return conn, nil
}

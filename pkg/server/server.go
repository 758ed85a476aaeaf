package server

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/httputil"
	"github.com/matzehuels/hanoi/pkg/pipeline"
)

const (
	// ShutdownTimeout bounds how long in-flight requests may run after the
	// serve context is cancelled.
	ShutdownTimeout = 10 * time.Second

	// MaxBodyBytes caps the size of a transcript posted to /v1/verify.
	MaxBodyBytes = 64 << 20
)

// Server serves the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	maxDisks int
	router   chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxDisks caps the disk count accepted by every route.
func WithMaxDisks(n int) Option {
	return func(s *Server) { s.maxDisks = n }
}

// New creates a server backed by runner. A nil runner solves without caching.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, nil)
	}
	s := &Server{
		runner:   runner,
		logger:   log.New(io.Discard),
		maxDisks: pipeline.DefaultMaxDisks,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recover(s.logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = httputil.WriteError(w, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/solve/{disks}", s.handleSolve)
		r.Get("/board/{disks}", s.handleBoard)
		r.Post("/verify", s.handleVerify)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

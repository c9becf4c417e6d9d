package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"dataproc/internal/platform/config"
	"dataproc/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// Server is a thin wrapper over chi and http.Server with context-driven shutdown
type Server struct {
	addr    string
	mux     *chi.Mux
	srv     *stdhttp.Server
	grace   time.Duration
	readyCh chan net.Addr
}

// NewServer reads API_PORT, READ_TIMEOUT and SHUTDOWN_GRACE from cfg.
// opts receive the *chi.Mux before any route is mounted.
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayPort("API_PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 2*time.Minute),
		},
		readyCh: make(chan net.Addr, 1),
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Ready yields the bound address once the listener is open
func (s *Server) Ready() <-chan net.Addr { return s.readyCh }

// Run listens until ctx is cancelled, then shuts down within the grace period
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")
	s.readyCh <- ln.Addr()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
		defer cancel()
		log.Info().Msg("http shutting down")
		return s.Shutdown(sctx)
	})
	return g.Wait()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

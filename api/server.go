package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-api/services"
	"marketplace-api/utils"
)

// DefaultAddress matches the port the marketplace frontend expects.
const DefaultAddress = "0.0.0.0:8000"

// ServerOptions configures the HTTP server.
type ServerOptions struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// AllowOrigins lists CORS origins. Empty, or containing "*", allows any origin.
	AllowOrigins []string

	// RateLimitRPS enables a global token bucket on the marketplace routes when > 0.
	RateLimitRPS   float64
	RateLimitBurst int

	MetricsEnabled bool
	Logger         *utils.Logger
}

// Server hosts the marketplace HTTP API.
type Server struct {
	http    *http.Server
	router  *gin.Engine
	svc     *services.MarketplaceService
	metrics *Metrics
	logger  *utils.Logger
	opts    ServerOptions
}

// ErrNilService is returned by NewServer when no service is given.
var ErrNilService = errors.New("api: marketplace service is nil")

// NewServer constructs a server for svc. It does not listen until Run is called.
func NewServer(svc *services.MarketplaceService, opts ServerOptions) (*Server, error) {
	if svc == nil {
		return nil, ErrNilService
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewLogger()
	}

	s := &Server{
		svc:    svc,
		logger: opts.Logger,
		opts:   opts,
	}
	if opts.MetricsEnabled {
		s.metrics = NewMetrics()
		s.metrics.ObserveCatalog(svc.Summary())
	}

	s.router = s.buildRouter()
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          opts.Logger.StdLogger(),
	}
	return s, nil
}

// Handler returns the routed HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully within
// ShutdownTimeout. It returns early if the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[api] Listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		s.logger.Info("[api] Shutting down (timeout %v)", s.opts.ShutdownTimeout)
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// Package api exposes the HTTP surface of the todolist backend over echo.
// It owns the authentication middleware, the per-endpoint authorization
// policy, and the mapping between domain records and wire DTOs.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/SinaFr/todolist-backend/internal/logging"
	"github.com/SinaFr/todolist-backend/internal/server/accounts"
	"github.com/SinaFr/todolist-backend/internal/server/auth"
	"github.com/SinaFr/todolist-backend/internal/server/config"
	"github.com/SinaFr/todolist-backend/internal/server/tasks"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address     string
	logger      logging.Logger
	accounts    *accounts.Service
	tasks       *tasks.Service
	jwtSecret   []byte
	sessionOpts auth.SessionOptions
	echo        *echo.Echo
}

func NewServer(cfg *config.Config, l logging.Logger, as *accounts.Service, ts *tasks.Service) *Server {
	s := &Server{
		address:   cfg.EndpointAddr,
		logger:    l.With("module", "http_server"),
		accounts:  as,
		tasks:     ts,
		jwtSecret: []byte(cfg.SecretKey),
		sessionOpts: auth.SessionOptions{
			Lifetime: cfg.SessionCookieLifetime,
			Secure:   cfg.SecureCookie,
		},
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		s.logRequests,
		s.resolvePrincipal,
	)

	s.registerRoutes(e)
	s.echo = e

	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful with a bounded timeout.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

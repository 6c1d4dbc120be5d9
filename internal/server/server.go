package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/newsninja/newsninja/internal/apperr"
	mw "github.com/newsninja/newsninja/pkg/middleware"
	pkgserver "github.com/newsninja/newsninja/pkg/server"
)

const (
	GracefulShutdownTimeout = 10 * time.Second

	healthCheckTimeout = 5 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg     *Config
	checker pkgserver.HealthChecker

	ctx  context.Context
	stop context.CancelFunc
}

func New(cfg *Config, checker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:    e,
		cfg:     cfg,
		checker: checker,
		ctx:     ctx,
		stop:    stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger())
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))

	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()

	return s
}

// SetupHealthChecks binds a liveness probe at path and, when dependency
// checkers are given, a readiness probe at path/detailed reporting each
// dependency by name.
func (s *Server) SetupHealthChecks(path string, deps map[string]pkgserver.HealthChecker) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if s.checker != nil && !s.checker.Healthy(ctx) {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"success": false,
				"message": "service unhealthy",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "News Ninja API is running",
		})
	})

	if len(deps) == 0 {
		return s
	}

	s.Echo.GET(path+"/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		checks := make(map[string]string, len(deps))
		healthy := true
		for name, checker := range deps {
			if checker.Healthy(ctx) {
				checks[name] = "up"
			} else {
				checks[name] = "down"
				healthy = false
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, map[string]any{
			"success": healthy,
			"checks":  checks,
		})
	})

	return s
}

// Context is the server's lifetime context, cancelled on shutdown signals.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal closes when a shutdown signal has been received.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}

	return nil
}

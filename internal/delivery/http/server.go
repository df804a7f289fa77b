package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"telemock/config"
	"telemock/internal/delivery"
	httpmiddleware "telemock/internal/delivery/http/middleware"
	"telemock/internal/delivery/http/router"
	"telemock/internal/delivery/middleware"
	"telemock/internal/domain/lifecycle"
	"telemock/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server that exposes the mock router.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Config, params.Logger, params.RouterParams)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho configures middleware and routes on a fresh echo instance.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics anywhere below are caught
	echoServer.Use(echomiddleware.Recover())

	// Request ID before any logging so every line carries it
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(slogecho.NewWithFilters(logger, slogecho.IgnorePath("/health")))
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(routerParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server",
		slog.String("host_port", hostPort),
		slog.String("api_prefix", s.cfg.Mock.APIPrefix),
		slog.Duration("latency", s.cfg.Mock.Latency),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

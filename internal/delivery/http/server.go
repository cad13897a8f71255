package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"resumeapp/config"
	"resumeapp/internal/delivery"
	"resumeapp/internal/delivery/http/middleware"
	"resumeapp/internal/delivery/http/router"
	"resumeapp/internal/delivery/http/validator"
	deliverymiddleware "resumeapp/internal/delivery/middleware"
	"resumeapp/internal/domain/lifecycle"
	"resumeapp/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config              *config.Config
	Logger              *slog.Logger
	Validate            *playground.Validate
	ErrorMiddleware     *middleware.ErrorMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
	LoggerMiddleware    *deliverymiddleware.LoggerMiddleware
	RouterParams        router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the Echo instance and registers its shutdown hook.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// NewEcho wires middleware and routes onto a fresh Echo instance.
func NewEcho(params HTTPParams) *echo.Echo {
	httpCfg := params.Config.HTTP

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = validator.New(params.Validate)
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	echoServer.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	echoServer.Pre(echomiddleware.RemoveTrailingSlash())
	echoServer.Use(params.RequestIDMiddleware.Process)
	echoServer.Use(params.LoggerMiddleware.Handle)
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     httpCfg.CORS.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
		ExposeHeaders:    []string{echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	if httpCfg.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
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

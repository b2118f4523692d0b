// internal/server/server.go

// Package server wires the HTTP routes to their handlers and owns the
// listener lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stepchain/internal/chain"
	"stepchain/internal/common/config"
	"stepchain/internal/common/errors"
	"stepchain/internal/common/logger"
)

type Server struct {
	echo   *echo.Echo
	config config.ServerConfig
	logger logger.Logger
}

func New(cfg *config.Config, log logger.Logger, orchestrator *chain.Orchestrator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	errHandler := errors.NewErrorHandler(log)
	e.HTTPErrorHandler = errHandler.HandleHTTPError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(middleware.Recover())
	e.Use(instrument(log))

	h := NewHandler(orchestrator, log)

	e.POST("/something", h.CreateSomething)
	e.GET("/shami_momo", h.TodaysNews)
	e.GET("/api/v0/teams", h.AllTeams)
	e.GET("/api/v0/teams/j1", h.TeamsJ1)
	e.GET("/api/v0/teams/j2", h.TeamsJ2)

	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &Server{
		echo:   e,
		config: cfg.Server,
		logger: log,
	}
}

// Start binds to all interfaces on the configured port and blocks until the
// listener stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.config.Port)
	s.logger.Info("server listening", map[string]interface{}{"addr": addr})

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

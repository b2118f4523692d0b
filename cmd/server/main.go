// cmd/server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"stepchain/internal/chain"
	"stepchain/internal/common/config"
	internalhttp "stepchain/internal/common/http"
	"stepchain/internal/common/logger"
	"stepchain/internal/common/observability"
	"stepchain/internal/server"
	"stepchain/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.Int("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.URL),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// One pooled HTTP client for the whole process, injected downward.
	httpClient := internalhttp.NewClient(cfg.Upstream.GetTimeout())
	echoClient := upstream.NewClient(upstream.NewConfig(cfg.Upstream), httpClient, log)
	orchestrator := chain.New(cfg.Chain.Steps, echoClient, log, obs)

	srv := server.New(cfg, log, orchestrator)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			zapLog.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	zapLog.Info("server stopped")
}

package main

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"backoff_retrier/internal/adapter/execution"
	"backoff_retrier/internal/retry"
	"backoff_retrier/internal/usecase"
	"backoff_retrier/pkg/config"
	httpPkg "backoff_retrier/pkg/http"
	"backoff_retrier/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := log.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "error syncing logger: %v\n", err)
		}
	}()
	zap.ReplaceGlobals(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	retryMetrics, err := retry.NewMetrics(reg)
	if err != nil {
		zap.L().Fatal("register retry metrics", zap.Error(err))
	}

	ethHTTP, err := ethclient.Dial(cfg.Ethereum.RPCHTTP)
	if err != nil {
		zap.L().Fatal("dial ethclient", zap.Error(err))
	}
	defer ethHTTP.Close()

	// The retry budget is re-read from the environment on every RPC.
	execClient := execution.NewExecutionClient(
		ethHTTP,
		config.EnvSource{},
		cfg.Ethereum.RequestTimeout,
		retry.WithNotifier(retry.Notifiers(retry.LogNotifier{}, retryMetrics)),
	)

	cache, err := execution.NewHeaderCache(
		cfg.Cache.Headers.MaxEntries,
		cfg.Cache.Headers.TTL,
	)
	if err != nil {
		zap.L().Fatal("init header cache", zap.Error(err))
	}

	headerUC := usecase.NewHeaderUseCase(execClient, cache)

	r := httpPkg.NewRouter(reg, headerUC)

	srv := &stdhttp.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zap.L().Info("starting server",
			zap.String("address", cfg.Server.Address),
			zap.Int("max_retries", cfg.Worker.MaxRetries),
		)
		if err := srv.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			zap.L().Fatal("listen error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zap.L().Info("shutting down…")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}
	zap.L().Info("server stopped")
}

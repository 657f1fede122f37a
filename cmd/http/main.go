package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/config"
	"github.com/awmpietro/sortlab/internal/logging"
	"github.com/awmpietro/sortlab/internal/metrics"
	"github.com/awmpietro/sortlab/internal/sorttrace"
	"github.com/awmpietro/sortlab/internal/transport/httptransport"
)

func main() {
	os.Exit(serve())
}

// serve returns the process exit code so that deferred log flushing runs
// before main exits.
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg config.Runtime, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	observer := sorttrace.NewAsyncObserver(sorttrace.MultiObserver{
		sorttrace.NewLatencyLogger(logger),
		recorder,
	}, cfg.ObsBuffer)
	defer func() {
		observer.Close()
		if dropped := observer.Dropped(); dropped > 0 {
			logger.Warn("trace observations dropped", zap.Uint64("count", dropped))
		}
	}()

	svc, err := app.Build(cfg, logger, observer, recorder)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	httptransport.NewHandler(svc, logger).Register(mux)
	mux.Handle("/metrics", metrics.Handler(reg))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

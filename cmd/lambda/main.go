package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/config"
	"github.com/awmpietro/sortlab/internal/logging"
	"github.com/awmpietro/sortlab/internal/sorttrace"
	"github.com/awmpietro/sortlab/internal/transport/lambdatransport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	latencyObserver := sorttrace.NewAsyncObserver(sorttrace.NewLatencyLogger(logger), cfg.ObsBuffer)
	defer latencyObserver.Close()

	svc, err := app.Build(cfg, logger, latencyObserver, nil)
	if err != nil {
		logger.Error("build service", zap.Error(err))
		latencyObserver.Close()
		_ = logger.Sync()
		os.Exit(1)
	}
	h := lambdatransport.NewHandler(svc)

	lambda.Start(h.Handle)
}

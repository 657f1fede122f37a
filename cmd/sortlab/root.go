package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/config"
	"github.com/awmpietro/sortlab/internal/logging"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

type rootOptions struct {
	configFile string
	catalog    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "sortlab",
		Short:         "Step-by-step traces and benchmarks for comparison sorts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "TOML config file used instead of SORTLAB_CONFIG; env overrides still apply")
	flags.StringVar(&opts.catalog, "catalog", "", "YAML fish catalog replacing the built-in one")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newTraceCommand(opts),
		newDOTCommand(opts),
		newPlayCommand(opts),
		newBenchCommand(opts),
	)
	return cmd
}

// service builds the same service the HTTP server runs, logging to stderr in
// console format unless the config names a log file.
func (o *rootOptions) service() (*app.Service, *zap.Logger, error) {
	path := o.configFile
	if path == "" {
		path = os.Getenv("SORTLAB_CONFIG")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	if o.catalog != "" {
		cfg.CatalogFile = o.catalog
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if cfg.Log.File == "" {
		cfg.Log.Format = "console"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.Build(cfg, logger, sorttrace.NewLatencyLogger(logger), nil)
	if err != nil {
		return nil, nil, err
	}
	return svc, logger, nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"customer-support-router/config"
	"customer-support-router/internal/app"
	"customer-support-router/pkg/log"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "supportctl",
		Short:         "Route customer support queries from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./config/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(newRouteCmd(opts))
	root.AddCommand(newClassifyCmd(opts))
	return root
}

// open loads configuration and assembles the support pipeline.
func (o *rootOptions) open(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    o.logLevel,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing support pipeline: %w", err)
	}
	return a, nil
}

func joinQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

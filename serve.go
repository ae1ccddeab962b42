package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/productfinder/productfinder/infra/catalog"
	"github.com/productfinder/productfinder/infra/config"
	"github.com/productfinder/productfinder/infra/logging"
	"github.com/productfinder/productfinder/infra/server"
)

type serveOptions struct {
	addr     string
	upstream string
	verbose  bool
}

func newServeCmd() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the product search backend",
		Long: `Serve the search API used by the terminal UI:

  GET /api/search?q=          products matching q, best first
  GET /api/search-suggestions popular terms, categories and examples
  GET /api/products           product titles
  GET /api/health             liveness

Products come from an embedded catalog unless --upstream points at a
DummyJSON-compatible API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", ":5000", "Listen address")
	cmd.Flags().StringVar(&opts.upstream, "upstream", "", "Proxy a DummyJSON-compatible API instead of the embedded catalog")
	cmd.Flags().Lookup("upstream").NoOptDefVal = server.DefaultUpstream
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	return cmd
}

func runServe(opts serveOptions) error {
	logger, err := logging.NewServerLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	src, err := newSource(opts.upstream)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(src, logger).ListenAndServe(ctx, opts.addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newSource(upstream string) (server.Source, error) {
	if upstream == "" {
		src, err := server.NewSeedSource()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}
		return src, nil
	}
	base, err := config.AbsoluteURL("--upstream", upstream)
	if err != nil {
		return nil, err
	}
	return server.NewUpstreamSource(catalog.NewClient(base)), nil
}

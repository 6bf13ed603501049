package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurolab/eegpos/internal/server"
	"github.com/neurolab/eegpos/pkg/cache"
	"github.com/neurolab/eegpos/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve electrode positions over HTTP",
		Long: `Serve electrode positions over HTTP.

The API exposes coordinate tables, head maps, and label metadata under
/v1. Responses are cached in the local file cache by default; pass
--redis to share the cache between instances.

The server runs until interrupted and shuts down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for shared caching (e.g. localhost:6379)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe builds the cache backend and serves until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string, noCache bool) error {
	store, err := c.serverCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	// API entries live in their own key namespace so a shared backend
	// never collides with CLI-generated entries.
	keyer := cache.NewScopedKeyer(nil, "api:v1:")
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Runner: runner,
		Logger: c.Logger,
	})
	return srv.ListenAndServe(ctx)
}

func (c *CLI) serverCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return newCache(false)
}

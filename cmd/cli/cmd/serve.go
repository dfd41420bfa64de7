// Package cmd - serve command
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"basecalc/api"
	"basecalc/internal/cache"
	"basecalc/internal/config"
	apperrors "basecalc/internal/errors"
	"basecalc/internal/logging"
)

func newServeCmd() *cobra.Command {
	var addr, redisAddr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: `Start a JSON API exposing the conversions.

Endpoints:
  POST /convert   {"input": "4D2", "input_base": 16, "output_base": 10}
  POST /table     {"entries": [{"value": "10,1", "base": 2}]}
  GET  /health
  GET  /version
  GET  /metrics   Prometheus metrics

With --redis (or server.redis_addr in the config) /convert responses are
cached in Redis. The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get().Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.RedisAddr = redisAddr
			}

			opts := []api.Option{
				api.WithLogger(logging.Logger),
				api.WithLimits(api.Limits{
					MaxSteps:         cfg.MaxStepsLimit,
					MaxDecimalPlaces: cfg.MaxDecimalPlaces,
					MaxTableEntries:  cfg.MaxTableEntries,
				}),
			}
			if cfg.RedisAddr != "" {
				ttl, err := cfg.TTL()
				if err != nil {
					return apperrors.Wrap(apperrors.TypeConfig, "server.cache_ttl", err)
				}
				store := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cache.WithTTL(ttl))
				defer store.Close()
				if err := store.Ping(cmd.Context()); err != nil {
					return apperrors.Wrap(apperrors.TypeConfig, "connecting to redis", err).
						WithContext("addr", cfg.RedisAddr)
				}
				logging.Info("result cache enabled", zap.String("redis", cfg.RedisAddr), zap.Duration("ttl", ttl))
				opts = append(opts, api.WithCache(store))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			newWriter(cmd).Info("Serving basecalc %s on %s", version, cfg.Addr)
			return api.NewServer(version, opts...).ListenAndServe(ctx, cfg.Addr)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the result cache")
	return serveCmd
}

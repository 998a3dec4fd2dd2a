package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/chitragupt/internal/config"
	"github.com/Lixing-Zhang/chitragupt/internal/seed"
	"github.com/Lixing-Zhang/chitragupt/internal/server"
	"github.com/Lixing-Zhang/chitragupt/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the inventory HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from environment
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if f := cmd.Flag("seed"); f != nil && f.Changed {
				cfg.Seed.Source = f.Value.String()
			}
			if addr != "" {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return fmt.Errorf("invalid --addr: %w", err)
				}
				cfg.Server.Host, cfg.Server.Port = host, port
			}

			log := logger.New(cfg.LogLevel)
			slog.SetDefault(log)

			log.Info("starting chitragupt inventory server",
				"port", cfg.Server.Port,
				"host", cfg.Server.Host,
				"log_level", cfg.LogLevel,
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			catalog, err := seed.Load(ctx, cfg.Seed.Source)
			if err != nil {
				log.Error("failed to load catalog", "source", cfg.Seed.Source, "error", err)
				return err
			}
			log.Info("catalog loaded",
				"source", sourceLabel(cfg.Seed.Source),
				"ingredients", len(catalog.Inventory),
				"recipes", len(catalog.Recipes),
			)

			app := server.NewApp(catalog)

			ln, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				log.Error("server failed to start", "error", err)
				return err
			}

			return server.Run(ctx, ln, server.NewRouter(app, cfg, log), cfg.Server, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address host:port (default $HOST:$PORT)")
	return cmd
}

func sourceLabel(source string) string {
	if source == "" {
		return "built-in sample"
	}
	return source
}

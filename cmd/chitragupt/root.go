package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/chitragupt/internal/seed"
	"github.com/Lixing-Zhang/chitragupt/internal/server"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "chitragupt",
		Short:        "Ingredient inventory and recipe production",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("seed", "", "catalog file or http(s) URL (default $SEED_SOURCE, then the built-in sample)")

	root.AddCommand(
		newServeCmd(),
		newStockCmd(),
		newRecipesCmd(),
		newPlanCmd(),
	)
	return root
}

// seedSource prefers the --seed flag over SEED_SOURCE
func seedSource(cmd *cobra.Command) string {
	if f := cmd.Flag("seed"); f != nil && f.Changed {
		return f.Value.String()
	}
	return os.Getenv("SEED_SOURCE")
}

// loadApp builds an offline app from the selected catalog
func loadApp(ctx context.Context, cmd *cobra.Command) (*server.App, error) {
	catalog, err := seed.Load(ctx, seedSource(cmd))
	if err != nil {
		return nil, err
	}
	return server.NewApp(catalog), nil
}

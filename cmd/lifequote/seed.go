package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/lifequote/internal/app"
)

// NewSeedCmd creates the seed command.
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the demo catalog if the store is empty",
		Long: `Seed inserts the demo insurers and plans (or seed.file) when the store
holds no insurer or no plan, and prints the resulting counts. Running it
again does not duplicate records.

Examples:
  # Seed the configured store
  lifequote seed

  # Seed a running service
  lifequote seed --server http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	addRemoteFlags(cmd)

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())

	var seeder app.Seeder

	server, _ := cmd.Flags().GetString(flagServer)
	if server != "" {
		remote, err := newRemote(server, cfg, logger)
		if err != nil {
			return err
		}

		seeder = remote
	} else {
		svc, err := openServices(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		defer svc.close(logger)

		seeder = svc.catalog
	}

	result, err := seeder.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	return writeSeedResult(cmd.OutOrStdout(), format, result)
}

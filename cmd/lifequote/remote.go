package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/lifequote/internal/adapters/clients"
	"github.com/jsamuelsen/lifequote/internal/adapters/clients/acl"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
)

const (
	flagServer = "server"
	flagFormat = "format"

	remoteName = "lifequote-api"
)

// addRemoteFlags registers the flags shared by quote and seed.
func addRemoteFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagServer, "", "base URL of a running service; the local store is not opened")
	cmd.Flags().StringP(flagFormat, "f", formatTable, "output format: table, json or markdown")
}

// newRemote builds the anti-corruption client for a running service.
func newRemote(baseURL string, cfg *config.Config, logger *slog.Logger) (*acl.Remote, error) {
	client, err := clients.New(clients.Config{
		BaseURL: baseURL,
		Name:    remoteName,
		Timeout: cfg.Client.Timeout,
		Retry:   cfg.Client.Retry,
		Circuit: cfg.Client.CircuitBreaker,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating client for %s: %w", baseURL, err)
	}

	return acl.NewRemote(client, logger), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	flagProfile  = "profile"
	flagLogLevel = "log-level"
)

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifequote",
		Short: "Life insurance quote comparison service",
		Long: `lifequote prices term life insurance plans for an applicant and ranks
them cheapest first.

Configuration is read from configs/base.yaml, configs/<profile>.yaml, a
.env file and APP_ environment variables, in increasing precedence.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	cmd.PersistentFlags().String(flagProfile, defaultProfile(), "configuration profile (configs/<profile>.yaml)")
	cmd.PersistentFlags().String(flagLogLevel, "", "override log.level (trace, debug, info, warn, error)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewQuoteCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultProfile() string {
	if profile := os.Getenv("APP_ENVIRONMENT"); profile != "" {
		return profile
	}

	return "local"
}

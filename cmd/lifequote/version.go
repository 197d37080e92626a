package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = ""

	// Commit is the git commit SHA.
	Commit = ""

	// BuildTime is the timestamp when the binary was built.
	BuildTime = ""
)

// getVersion prefers ldflags, then module build info.
func getVersion() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

func getCommit() string {
	if Commit != "" {
		return Commit
	}

	if value := buildSetting("vcs.revision"); value != "" {
		if len(value) > 7 {
			return value[:7]
		}

		return value
	}

	return "unknown"
}

func getBuildTime() string {
	if BuildTime != "" {
		return BuildTime
	}

	if value := buildSetting("vcs.time"); value != "" {
		return value
	}

	return "unknown"
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}

	return ""
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifequote version %s\n", getVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", getCommit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", getBuildTime())
		},
	}
}

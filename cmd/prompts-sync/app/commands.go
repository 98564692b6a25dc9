// Package app provides the command surface for the prompts sync job.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/firefox-ai/prompts-sync/internal/versions"
)

var rootCmd = &cobra.Command{
	Use:               "prompts-sync",
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Short:             "Synchronize AI window prompts to Remote Settings",
	Long: `prompts-sync fetches prompt definitions from their Git repository, diffs
them against the ai-window-prompts collection and applies the changes as one
batch, then routes the change through the collection's review workflow.

All configuration is environment-sourced: ENVIRONMENT, SERVER, AUTHORIZATION,
DRY_RUN, GIT_TOKEN, REQUEST_TIMEOUT_SECONDS, SENTRY_DSN and SENTRY_ENV.`,
	RunE: runSync,
}

// NewRootCmd creates the root command for the sync job.
func NewRootCmd() *cobra.Command {
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := versions.GetVersionInfo()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			slog.Error("Error retrieving format flag", "error", err)
			return
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				slog.Error("Error formatting version info as JSON", "error", err)
				return
			}
			fmt.Println(string(output))
		} else {
			slog.Info("prompts-sync version",
				"version", info.Version,
				"commit", info.Commit,
				"built", info.BuildDate,
				"go", info.GoVersion,
				"platform", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "", "Output format (json)")
}

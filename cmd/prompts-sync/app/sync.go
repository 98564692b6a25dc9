package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/firefox-ai/prompts-sync/internal/config"
	"github.com/firefox-ai/prompts-sync/internal/gitrepo"
	"github.com/firefox-ai/prompts-sync/internal/loader"
	"github.com/firefox-ai/prompts-sync/internal/remotesettings"
	syncengine "github.com/firefox-ai/prompts-sync/internal/sync"
	"github.com/firefox-ai/prompts-sync/internal/telemetry"
)

// runSync executes one fetch-diff-apply-review cycle. Any stage failure
// aborts the remainder of the run and surfaces as exit code 1.
func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	if err := telemetry.Init(cfg.SentryDSN, cfg.SentryEnv); err != nil {
		slog.Warn("failed to initialize sentry", "error", err)
	}
	defer telemetry.Flush()

	client := remotesettings.NewHTTPClient(remotesettings.ClientConfig{
		ServerURL:     cfg.ServerURL,
		Bucket:        config.Bucket,
		Collection:    config.Collection,
		Authorization: cfg.Authorization,
		Timeout:       cfg.RequestTimeout,
		DryRun:        cfg.DryRun,
	})

	ctx := cmd.Context()
	if err := checkCredentials(ctx, client, cfg.ServerURL); err != nil {
		telemetry.CaptureError(err)
		slog.Error("connection check failed", "error", err)
		return err
	}

	gitClient := gitrepo.NewDefaultClient(gitrepo.Config{Token: cfg.GitToken})
	records, err := loadPrompts(ctx, gitClient)
	if err != nil {
		telemetry.CaptureError(err)
		slog.Error("failed to load prompt records", "error", err)
		return err
	}

	engine := syncengine.NewEngine(syncengine.Config{Environment: cfg.Environment}, client)
	if err := engine.Sync(ctx, records); err != nil {
		telemetry.CaptureError(err)
		slog.Error("sync failed", "error", err)
		return err
	}
	return nil
}

// checkCredentials verifies the server is reachable and reports which
// account the job runs as.
func checkCredentials(ctx context.Context, client remotesettings.Client, serverURL string) error {
	slog.Info("checking credentials", "server", serverURL)
	info, err := client.ServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", remotesettings.ErrConnection, err)
	}
	if info.UserID != "" {
		slog.Info("logged in", "user", info.UserID)
	} else {
		slog.Warn("anonymous access")
	}
	return nil
}

// loadPrompts acquires the prompts repository, loads the desired records
// and releases the checkout tree before the engine runs, on both the
// success and failure path.
func loadPrompts(ctx context.Context, gitClient gitrepo.Client) ([]remotesettings.Record, error) {
	path, err := gitClient.Clone(ctx, config.PromptsRepoURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := gitClient.Cleanup(path); err != nil {
			slog.Warn("failed to clean up checkout", "path", path, "error", err)
			return
		}
		slog.Info("cleaned up temporary directory")
	}()

	records, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("found prompt records", "count", len(records))
	return records, nil
}

// Package sync implements the synchronization engine: it diffs the desired
// records against the collection's current state, applies the changes as
// one batch and drives the review workflow.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/firefox-ai/prompts-sync/internal/config"
	"github.com/firefox-ai/prompts-sync/internal/remotesettings"
)

// Stage errors. Each pipeline stage converts its remote failure into one of
// these kinds; the first failure short-circuits the rest of the run.
var (
	// ErrFetch indicates the current records could not be listed. No
	// mutation is attempted after it.
	ErrFetch = errors.New("failed to fetch existing records")

	// ErrApply indicates the batch submission failed. The store may have
	// applied a subset of it; that subset is final and not reconciled.
	ErrApply = errors.New("failed to apply changes")

	// ErrReview indicates the review transition failed after a successful
	// batch. The applied data is not rolled back, leaving the workflow
	// state stale.
	ErrReview = errors.New("failed to update collection status")
)

// reviewMessage is the comment attached to every review request.
const reviewMessage = "r?"

// Config holds the engine settings.
type Config struct {
	// Environment decides whether review requests are self-approved.
	Environment config.Environment
}

// Engine synchronizes the collection with a desired record set.
// It holds no state across runs; every Sync is an independent
// fetch-diff-apply-review cycle.
type Engine struct {
	cfg    Config
	client remotesettings.Client
}

// NewEngine creates an engine bound to a store client.
func NewEngine(cfg Config, client remotesettings.Client) *Engine {
	return &Engine{
		cfg:    cfg,
		client: client,
	}
}

// Sync fetches the collection's current records, diffs them against the
// desired set, applies the changes as one batch and advances the review
// workflow. An empty diff is a successful no-op.
func (e *Engine) Sync(ctx context.Context, desired []remotesettings.Record) error {
	slog.Info("fetching current destination records")
	actual, err := e.client.FetchAllRecords(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	diff := Diff(desired, actual)
	if diff.Empty() {
		slog.Info("records are already in sync, nothing to do")
		return nil
	}

	if err := e.apply(ctx, diff); err != nil {
		return err
	}
	return e.transitionReview(ctx)
}

// apply submits the whole diff as one batch request.
func (e *Engine) apply(ctx context.Context, diff DiffResult) error {
	slog.Info("applying changes",
		"creates", len(diff.ToCreate),
		"updates", len(diff.ToUpdate),
		"deletes", len(diff.ToDelete))

	batch := e.client.NewBatch()
	for _, record := range diff.ToCreate {
		batch.CreateRecord(record)
	}
	for _, pair := range diff.ToUpdate {
		// The server manages revision stamps itself; sending one back
		// provokes optimistic-concurrency conflicts.
		batch.UpdateRecord(pair.New.WithoutLastModified())
	}
	for _, record := range diff.ToDelete {
		batch.DeleteRecord(record.ID)
	}

	count, err := batch.Commit(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApply, err)
	}
	slog.Info("batch operations applied", "operations", count)
	return nil
}

// transitionReview requests a review of the applied changes and, on the dev
// environment only, immediately approves it.
func (e *Engine) transitionReview(ctx context.Context) error {
	if e.cfg.Environment == config.EnvironmentDev {
		slog.Info("self-approving changes on dev")
		if err := e.client.RequestReview(ctx, reviewMessage); err != nil {
			return fmt.Errorf("%w: %w", ErrReview, err)
		}
		if err := e.client.ApproveChanges(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrReview, err)
		}
		slog.Info("changes self-approved")
		return nil
	}

	slog.Info("requesting review")
	if err := e.client.RequestReview(ctx, reviewMessage); err != nil {
		return fmt.Errorf("%w: %w", ErrReview, err)
	}
	slog.Info("review requested")
	return nil
}

// Package gitrepo acquires the prompts repository: a shallow, single-branch,
// token-authenticated clone into a run-scoped temporary directory.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks -source=client.go Client

// ErrAcquisition indicates the repository could not be fetched or the
// required credential is missing.
var ErrAcquisition = errors.New("failed to acquire prompts repository")

const (
	// DefaultBranch is the branch fetched when none is configured.
	DefaultBranch = "main"

	// DefaultCloneTimeout bounds the whole clone operation.
	DefaultCloneTimeout = 60 * time.Second

	// tempDirPrefix names the run-scoped checkout directories.
	tempDirPrefix = "prompts_"
)

// Client acquires and releases a checkout of the prompts repository.
// The checkout tree is scoped to one run: callers must Cleanup the returned
// path once record loading finishes, on both success and failure paths.
type Client interface {
	// Clone fetches the repository and returns the checkout path.
	Clone(ctx context.Context, url string) (string, error)

	// Cleanup removes the checkout tree.
	Cleanup(path string) error
}

// Config configures a DefaultClient.
type Config struct {
	// Token authenticates the clone. Cloning without a token is an error.
	Token string

	// Branch to fetch; DefaultBranch when empty.
	Branch string

	// Timeout bounds the clone; DefaultCloneTimeout when zero.
	Timeout time.Duration
}

// DefaultClient implements Client using go-git.
type DefaultClient struct {
	cfg Config
}

// NewDefaultClient creates a clone client with defaults applied.
func NewDefaultClient(cfg Config) *DefaultClient {
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultCloneTimeout
	}
	return &DefaultClient{cfg: cfg}
}

// Clone performs a shallow single-branch clone into a fresh temporary
// directory and returns its path.
func (c *DefaultClient) Clone(ctx context.Context, url string) (string, error) {
	if c.cfg.Token == "" {
		return "", fmt.Errorf("%w: GIT_TOKEN is not set", ErrAcquisition)
	}

	checkoutDir, err := os.MkdirTemp("", tempDirPrefix)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	slog.Info("cloning prompts repository", "url", url, "branch", c.cfg.Branch)
	start := time.Now()

	_, err = git.PlainCloneContext(ctx, checkoutDir, false, &git.CloneOptions{
		URL: url,
		// The token rides as the basic-auth username, matching the
		// https://<token>@host URL form GitHub accepts.
		Auth:          &githttp.BasicAuth{Username: c.cfg.Token},
		ReferenceName: plumbing.NewBranchReferenceName(c.cfg.Branch),
		SingleBranch:  true,
		Depth:         1,
	})
	if err != nil {
		if removeErr := os.RemoveAll(checkoutDir); removeErr != nil {
			slog.Warn("failed to remove checkout directory", "path", checkoutDir, "error", removeErr)
		}
		return "", fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	slog.Info("repository cloned", "duration", time.Since(start).String())
	return checkoutDir, nil
}

// Cleanup removes the checkout tree.
func (c *DefaultClient) Cleanup(path string) error {
	if path == "" {
		return fmt.Errorf("checkout path cannot be empty")
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove checkout at %s: %w", path, err)
	}
	return nil
}

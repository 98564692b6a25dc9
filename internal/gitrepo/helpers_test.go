package gitrepo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// newLocalRepo initializes a repository on disk with one commit on main
// containing a minimal prompts tree.
func newLocalRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.Main,
		},
	})
	require.NoError(t, err)

	promptDir := filepath.Join(dir, "prompts", "chat", "v1")
	require.NoError(t, os.MkdirAll(promptDir, 0750))
	require.NoError(t, os.WriteFile(
		filepath.Join(promptDir, "claude.3.5.json"),
		[]byte(`{"feature": "chat", "model": "claude.3.5", "parameters": {}}`),
		0600))
	require.NoError(t, os.WriteFile(
		filepath.Join(promptDir, "claude.3.5.md"),
		[]byte("You are a helpful assistant."),
		0600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(".")
	require.NoError(t, err)
	_, err = worktree.Commit("seed prompts", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

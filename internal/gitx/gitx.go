// Package gitx wraps the git operations used by the push/pull helper
// commands. Git is invoked as an opaque external command; only exit status
// and captured output are inspected.
package gitx

import (
	"context"
	"strings"

	"devkit/internal/execx"
)

// Client handles git command operations.
type Client interface {
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
	Pull(ctx context.Context) error
	HasChanges(ctx context.Context) (bool, error)
	CurrentBranch(ctx context.Context) (string, error)
}

// SystemClient implements Client using the system git binary.
type SystemClient struct {
	runner *execx.Runner
}

// NewSystemClient creates a SystemClient operating in dir.
func NewSystemClient(dir string, verbose bool) *SystemClient {
	return &SystemClient{runner: &execx.Runner{Bin: "git", Dir: dir, Verbose: verbose}}
}

// IsInstalled returns true if the git binary is available on PATH.
func IsInstalled() bool {
	return execx.IsInstalled("git")
}

// AddAll stages every change in the working tree.
func (c *SystemClient) AddAll(ctx context.Context) error {
	return c.runner.RunSilent(ctx, "add", "-A")
}

// Commit records staged changes with the given message.
func (c *SystemClient) Commit(ctx context.Context, message string) error {
	return c.runner.RunSilent(ctx, "commit", "-m", message)
}

// Push sends local commits to the default remote.
func (c *SystemClient) Push(ctx context.Context) error {
	return c.runner.RunSilent(ctx, "push")
}

// Pull integrates remote changes into the current branch.
func (c *SystemClient) Pull(ctx context.Context) error {
	return c.runner.RunSilent(ctx, "pull")
}

// HasChanges reports whether the working tree differs from HEAD.
func (c *SystemClient) HasChanges(ctx context.Context) (bool, error) {
	out, err := c.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CurrentBranch returns the name of the checked-out branch.
func (c *SystemClient) CurrentBranch(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

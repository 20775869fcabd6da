package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/compozy/releasebranch/internal/domain"
)

// gitService is the implementation of the GitService interface.
type gitService struct {
	// dir is the repository working directory; empty means the process cwd.
	dir string
	// timeout for local command execution
	timeout time.Duration
	// pushTimeout for commands touching the network
	pushTimeout time.Duration
}

// NewGitService creates a GitService operating on the repository at dir.
func NewGitService(dir string) GitService {
	return &gitService{
		dir:         dir,
		timeout:     DefaultGitTimeout,
		pushTimeout: DefaultGitPushTimeout,
	}
}

// executeGit runs git with a timeout. The user's global git configuration is
// bypassed so host-level identity and aliases cannot change behavior; extra
// environment entries are scoped to this one invocation.
func (s *gitService) executeGit(
	ctx context.Context,
	timeout time.Duration,
	extraEnv []string,
	args ...string,
) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	cmd.Env = append(cmd.Env, extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("git %s timed out after %v", args[0], timeout)
		}
		errMsg := stderr.String()
		if errMsg != "" {
			return nil, fmt.Errorf("git %s failed: %w (stderr: %s)", args[0], err, errMsg)
		}
		return nil, fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return stdout.Bytes(), nil
}

// Version returns the raw `git --version` output.
func (s *gitService) Version(ctx context.Context) (string, error) {
	out, err := s.executeGit(ctx, s.timeout, nil, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to query git version: %w", err)
	}
	return string(out), nil
}

// StashStaged stashes staged changes; a tree with nothing staged is a no-op.
func (s *gitService) StashStaged(ctx context.Context) error {
	// A failing stash here means there was nothing to save.
	_, _ = s.executeGit(ctx, s.timeout, nil, "stash", "push", "--staged")
	return nil
}

// StashPop restores the most recent stash entry if one exists.
func (s *gitService) StashPop(ctx context.Context) (bool, error) {
	if _, err := s.executeGit(ctx, s.timeout, nil, "stash", "pop"); err != nil {
		// No stash entry: normal alternate path, not an error.
		return false, nil
	}
	return true, nil
}

// Clean removes untracked files and directories, including ignored ones.
func (s *gitService) Clean(ctx context.Context) error {
	if _, err := s.executeGit(ctx, s.timeout, nil, "clean", "-d", "-x", "-f"); err != nil {
		return fmt.Errorf("failed to clean working tree: %w", err)
	}
	return nil
}

// Checkout switches to an existing branch.
func (s *gitService) Checkout(ctx context.Context, branch string) error {
	if _, err := s.executeGit(ctx, s.timeout, nil, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout branch %q: %w", branch, err)
	}
	return nil
}

// CheckoutOrphan creates and switches to a parentless branch with an empty
// index and working tree, so the seed commit carries no files and the first
// merge onto the branch brings in the full tree.
func (s *gitService) CheckoutOrphan(ctx context.Context, branch string) error {
	if _, err := s.executeGit(ctx, s.timeout, nil, "checkout", "--orphan", branch); err != nil {
		return fmt.Errorf("failed to create orphan branch %q: %w", branch, err)
	}
	// An orphan checkout keeps the previous HEAD's files staged; drop them.
	if _, err := s.executeGit(ctx, s.timeout, nil, "rm", "-rf", "-q", "--ignore-unmatch", "."); err != nil {
		return fmt.Errorf("failed to empty orphan branch %q: %w", branch, err)
	}
	return nil
}

// AddAll stages every change in the working tree.
func (s *gitService) AddAll(ctx context.Context) error {
	if _, err := s.executeGit(ctx, s.timeout, nil, "add", "--all"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates or amends a commit. Hooks are bypassed: the release commit
// is synthesized, not authored.
func (s *gitService) Commit(ctx context.Context, message string, opts CommitOptions) error {
	args := []string{"commit", "--no-verify"}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if opts.Amend {
		args = append(args, "--amend")
	}
	args = append(args, "--message", message)
	if _, err := s.executeGit(ctx, s.timeout, opts.Identity.Env(), args...); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// MergeTheirs merges rev, resolving conflicting hunks in favor of the
// incoming side and always producing a merge commit.
func (s *gitService) MergeTheirs(
	ctx context.Context,
	rev, message string,
	id domain.CommitIdentity,
) error {
	args := []string{
		"merge",
		"--allow-unrelated-histories",
		"--no-ff",
		"--strategy-option", "theirs",
		"--message", message,
		rev,
	}
	if _, err := s.executeGit(ctx, s.timeout, id.Env(), args...); err != nil {
		return fmt.Errorf("failed to merge %q: %w", rev, err)
	}
	return nil
}

// ResetSoft moves HEAD to rev, leaving the difference staged.
func (s *gitService) ResetSoft(ctx context.Context, rev string) error {
	if _, err := s.executeGit(ctx, s.timeout, nil, "reset", rev, "--soft"); err != nil {
		return fmt.Errorf("failed to soft-reset to %q: %w", rev, err)
	}
	return nil
}

// TagAnnotated creates an annotated tag on the current commit.
func (s *gitService) TagAnnotated(
	ctx context.Context,
	name, message string,
	id domain.CommitIdentity,
) error {
	args := []string{"tag", "--annotate", name, "--message", message}
	if _, err := s.executeGit(ctx, s.timeout, id.Env(), args...); err != nil {
		return fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return nil
}

// Push pushes the branch and its annotated tags, creating the upstream
// tracking relationship if absent.
func (s *gitService) Push(ctx context.Context, remote, branch string) error {
	args := []string{
		"push",
		"--no-verify",
		"--follow-tags",
		"--set-upstream",
		remote,
		branch,
	}
	if _, err := s.executeGit(ctx, s.pushTimeout, nil, args...); err != nil {
		return fmt.Errorf("failed to push branch %q to remote %q: %w", branch, remote, err)
	}
	return nil
}

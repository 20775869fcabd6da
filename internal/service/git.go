package service

import (
	"context"

	"github.com/compozy/releasebranch/internal/domain"
)

// CommitOptions controls a single commit invocation.
type CommitOptions struct {
	// AllowEmpty permits a commit with no changes.
	AllowEmpty bool
	// Amend replaces the current commit instead of adding a new one.
	Amend bool
	// Identity overrides author/committer for this invocation only.
	Identity domain.CommitIdentity
}

// GitService runs the git binary for porcelain operations whose semantics
// only the command line provides (staged-only stash, merge strategies,
// orphan checkout, amend, follow-tags push). Repository-level queries live
// in the repository package; this service never interprets history.
type GitService interface {
	// Version returns the raw `git --version` output.
	Version(ctx context.Context) (string, error)
	// StashStaged stashes staged changes. Absence of staged changes is a
	// no-op, not an error.
	StashStaged(ctx context.Context) error
	// StashPop restores the most recent stash entry. It reports whether a
	// stash was present; absence is a normal alternate path.
	StashPop(ctx context.Context) (bool, error)
	// Clean forcibly removes untracked files and directories, including
	// ignored ones.
	Clean(ctx context.Context) error
	// Checkout switches to an existing branch.
	Checkout(ctx context.Context, branch string) error
	// CheckoutOrphan creates and switches to a parentless branch.
	CheckoutOrphan(ctx context.Context, branch string) error
	// AddAll stages every change in the working tree.
	AddAll(ctx context.Context) error
	// Commit creates (or amends) a commit with the given message.
	Commit(ctx context.Context, message string, opts CommitOptions) error
	// MergeTheirs merges rev with a forced merge commit, allowing unrelated
	// histories and resolving conflicting hunks in favor of the incoming side.
	MergeTheirs(ctx context.Context, rev, message string, id domain.CommitIdentity) error
	// ResetSoft moves HEAD to rev, keeping its previous tree staged.
	ResetSoft(ctx context.Context, rev string) error
	// TagAnnotated creates an annotated tag on the current commit.
	TagAnnotated(ctx context.Context, name, message string, id domain.CommitIdentity) error
	// Push pushes the branch and its tags to the remote, setting up the
	// upstream tracking relationship if absent.
	Push(ctx context.Context, remote, branch string) error
}

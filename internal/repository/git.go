package repository

import (
	"context"

	"github.com/compozy/releasebranch/internal/domain"
)

// GitRepository provides queries and ref-level mutations on a local clone.
// Worktree-level porcelain (stash, merge, clean) lives in the service layer;
// everything here is safe to express through go-git.
type GitRepository interface {
	// Path returns the repository's working directory.
	Path() string
	// FetchRemoteBranches fetches all refs from the named remote and returns
	// the branch names present on it.
	FetchRemoteBranches(ctx context.Context, remoteName string) ([]string, error)
	// TagExists reports whether a tag by that name exists.
	TagExists(ctx context.Context, name string) (bool, error)
	// TagCommit resolves a tag to the hash of the commit it labels.
	TagCommit(ctx context.Context, name string) (string, error)
	// ResolveCommit resolves a revision (hash, ref name, HEAD) to a commit.
	ResolveCommit(ctx context.Context, rev string) (*domain.Commit, error)
	// CreateBranch creates a branch pointing at the current HEAD.
	CreateBranch(ctx context.Context, name string) error
	// BranchExists reports whether a local branch by that name exists.
	BranchExists(ctx context.Context, name string) (bool, error)
	// DeleteBranch removes a local branch ref.
	DeleteBranch(ctx context.Context, name string) error
	// IsDirty reports whether the working tree holds uncommitted changes.
	IsDirty(ctx context.Context) (bool, error)
	// CreateOrUpdateRemote ensures a remote by that name points at the URL.
	// It reports whether the remote was newly created.
	CreateOrUpdateRemote(ctx context.Context, name, url string) (bool, error)
}

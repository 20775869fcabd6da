package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/compozy/releasebranch/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// gitRepository is the go-git backed implementation of GitRepository.
type gitRepository struct {
	repo *git.Repository
	path string
}

// NewGitRepository opens the git repository at path. The path must be the
// repository root; parent directories are not searched.
func NewGitRepository(path string) (GitRepository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}
	return &gitRepository{repo: repo, path: path}, nil
}

// Path returns the repository working directory.
func (r *gitRepository) Path() string {
	return r.path
}

// FetchRemoteBranches fetches all heads from the remote and returns the
// branch names it advertises.
func (r *gitRepository) FetchRemoteBranches(ctx context.Context, remoteName string) ([]string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return nil, fmt.Errorf("failed to get remote %q: %w", remoteName, err)
	}
	refSpec := config.RefSpec(fmt.Sprintf("+refs/heads/*:refs/remotes/%s/*", remoteName))
	// Default tag following, as a plain `git fetch` would: tags pointing at
	// fetched history come along, existing local tags are never clobbered.
	err = remote.FetchContext(ctx, &git.FetchOptions{
		RefSpecs: []config.RefSpec{refSpec},
	})
	switch {
	case errors.Is(err, transport.ErrEmptyRemoteRepository):
		// A freshly created remote has no refs to fetch; the first release
		// proceeds against an empty branch set.
		return nil, nil
	case err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate):
		return nil, fmt.Errorf("failed to fetch from remote %q: %w", remoteName, err)
	}
	refs, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	prefix := "refs/remotes/" + remoteName + "/"
	var branches []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if strings.HasPrefix(name, prefix) && !strings.HasSuffix(name, "/HEAD") {
			branches = append(branches, strings.TrimPrefix(name, prefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}
	return branches, nil
}

// TagExists checks if a tag exists.
func (r *gitRepository) TagExists(_ context.Context, name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check tag %q: %w", name, err)
	}
	return true, nil
}

// TagCommit resolves a tag (lightweight or annotated) to its commit hash.
func (r *gitRepository) TagCommit(_ context.Context, name string) (string, error) {
	ref, err := r.repo.Tag(name)
	if err != nil {
		return "", fmt.Errorf("failed to get tag %q: %w", name, err)
	}
	// Lightweight tags point straight at the commit
	if commit, err := r.repo.CommitObject(ref.Hash()); err == nil {
		return commit.Hash.String(), nil
	}
	tagObj, err := r.repo.TagObject(ref.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to resolve tag %q: %w", name, err)
	}
	commit, err := r.repo.CommitObject(tagObj.Target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve commit for tag %q: %w", name, err)
	}
	return commit.Hash.String(), nil
}

// ResolveCommit resolves a revision to a commit.
func (r *gitRepository) ResolveCommit(_ context.Context, rev string) (*domain.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}
	return &domain.Commit{
		Hash:        commit.Hash.String(),
		CommittedAt: commit.Committer.When,
	}, nil
}

// CreateBranch creates a branch pointing at the current HEAD.
func (r *gitRepository) CreateBranch(_ context.Context, name string) error {
	branchRef := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(branchRef, false); err == nil {
		return fmt.Errorf("branch %q already exists", name)
	}
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("failed to get HEAD: %w", err)
	}
	ref := plumbing.NewHashReference(branchRef, head.Hash())
	return r.repo.Storer.SetReference(ref)
}

// BranchExists reports whether a local branch exists, as a pure query. The
// updater relies on this instead of interpreting checkout failures.
func (r *gitRepository) BranchExists(_ context.Context, name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check branch %q: %w", name, err)
	}
	return true, nil
}

// DeleteBranch deletes a local branch.
func (r *gitRepository) DeleteBranch(_ context.Context, name string) error {
	err := r.repo.Storer.RemoveReference(plumbing.NewBranchReferenceName(name))
	if err != nil {
		return fmt.Errorf("failed to delete branch %q: %w", name, err)
	}
	return nil
}

// IsDirty reports whether the working tree holds uncommitted changes.
func (r *gitRepository) IsDirty(_ context.Context) (bool, error) {
	w, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return !status.IsClean(), nil
}

// CreateOrUpdateRemote ensures a remote by that name exists and points at the
// URL. Running twice with the same inputs yields the same end state.
func (r *gitRepository) CreateOrUpdateRemote(_ context.Context, name, url string) (bool, error) {
	_, err := r.repo.Remote(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		_, err = r.repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
		if err != nil {
			return false, fmt.Errorf("failed to create remote %q: %w", name, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get remote %q: %w", name, err)
	}
	cfg, err := r.repo.Config()
	if err != nil {
		return false, fmt.Errorf("failed to get config: %w", err)
	}
	cfg.Remotes[name].URLs = []string{url}
	if err := r.repo.Storer.SetConfig(cfg); err != nil {
		return false, fmt.Errorf("failed to update remote %q: %w", name, err)
	}
	return false, nil
}

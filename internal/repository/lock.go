package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	// LockTimeout defines the maximum time to wait for the repository lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond

	lockFileName = "release-branch.lock"
)

// Locker serializes release runs against one checkout.
type Locker interface {
	Acquire(ctx context.Context) error
	Release() error
}

// RepositoryLock is a flock-based Locker keyed on a lock file inside the
// repository's .git directory. The updater performs destructive worktree
// operations and assumes exclusive access; the lock keeps a second CI job
// pointed at the same checkout from interleaving with a running update.
type RepositoryLock struct {
	lock *flock.Flock
}

// NewRepositoryLock creates a lock for the repository at repoPath.
func NewRepositoryLock(repoPath string) *RepositoryLock {
	return &RepositoryLock{
		lock: flock.New(filepath.Join(repoPath, ".git", lockFileName)),
	}
}

// Acquire takes the exclusive lock, retrying until LockTimeout.
func (l *RepositoryLock) Acquire(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		locked, err := l.lock.TryLock()
		if err != nil {
			return fmt.Errorf("failed to acquire repository lock: %w", err)
		}
		if locked {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("could not acquire repository lock within %s: %w", LockTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Release drops the lock.
func (l *RepositoryLock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release repository lock: %w", err)
	}
	return nil
}

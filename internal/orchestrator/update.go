package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/repository"
	"github.com/compozy/releasebranch/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateOrchestrator drives the release-branch update procedure: fetch,
// version validation, staging of the release patch, merge, tag and push.
// Every git interaction is a blocking call executed to completion; the first
// unexpected failure aborts the run with no rollback, leaving recovery to
// the operator inspecting the (disposable) CI checkout.
type UpdateOrchestrator struct {
	gitRepo repository.GitRepository
	gitSvc  service.GitService
	lock    repository.Locker
	log     *zap.Logger

	// confirm asks the operator a yes/no question; injectable for tests.
	confirm func(message string) (bool, error)
}

// NewUpdateOrchestrator creates a new update orchestrator.
func NewUpdateOrchestrator(
	gitRepo repository.GitRepository,
	gitSvc service.GitService,
	lock repository.Locker,
	log *zap.Logger,
) *UpdateOrchestrator {
	return &UpdateOrchestrator{
		gitRepo: gitRepo,
		gitSvc:  gitSvc,
		lock:    lock,
		log:     log,
		confirm: askConfirm,
	}
}

func askConfirm(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{Message: message}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return confirmed, nil
}

// Execute runs the complete update procedure for one release.
func (o *UpdateOrchestrator) Execute(ctx context.Context, req *domain.UpdateRequest) error {
	if err := o.validate(req); err != nil {
		return err
	}
	if err := o.lock.Acquire(ctx); err != nil {
		return err
	}
	defer func() {
		if err := o.lock.Release(); err != nil {
			o.log.Warn("Failed to release repository lock", zap.Error(err))
		}
	}()

	commit, err := o.prepare(ctx, req)
	if err != nil {
		return err
	}
	identity := req.Identity
	identity.AuthorDate = commit.CommittedAt

	scratchBranch := uuid.NewString()
	if err := o.gitRepo.CreateBranch(ctx, scratchBranch); err != nil {
		return fmt.Errorf("failed to create scratch branch: %w", err)
	}

	patchPresent, err := o.stageReleasePatch(ctx, scratchBranch, identity)
	if err != nil {
		return err
	}
	if err := o.updateReleaseBranch(ctx, req, commit, scratchBranch, patchPresent, identity); err != nil {
		return err
	}

	// The scratch branch has served its purpose; its contents survive in the
	// release commit. Failing to drop the ref is not worth aborting over.
	if err := o.gitRepo.DeleteBranch(ctx, scratchBranch); err != nil {
		o.log.Warn("Failed to delete scratch branch", zap.String("branch", scratchBranch), zap.Error(err))
	}

	return o.push(ctx, req)
}

func (o *UpdateOrchestrator) validate(req *domain.UpdateRequest) error {
	if err := ValidateVersionTag(req.Version); err != nil {
		return err
	}
	if err := ValidateBranchName(req.ReleaseBranch); err != nil {
		return err
	}
	return ValidateRemoteName(req.RemoteName)
}

// prepare fetches the remote and validates version and target commit before
// any mutation happens.
func (o *UpdateOrchestrator) prepare(ctx context.Context, req *domain.UpdateRequest) (*domain.Commit, error) {
	remoteBranches, err := o.gitRepo.FetchRemoteBranches(ctx, req.RemoteName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from remote %q: %w", req.RemoteName, err)
	}
	if !slices.Contains(remoteBranches, req.ReleaseBranch) {
		o.log.Warn(
			"Release branch is absent on the git remote (this is normal when performing the first release)",
			zap.String("branch", req.ReleaseBranch),
		)
	}

	rev := req.UpdateTo
	if rev == "" {
		rev = "HEAD"
	}
	commit, err := o.gitRepo.ResolveCommit(ctx, rev)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target commit %q: %w", rev, err)
	}

	// A version must never label two releases
	exists, err := o.gitRepo.TagExists(ctx, req.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag %q: %w", req.Version, err)
	}
	if exists {
		taggedCommit, err := o.gitRepo.TagCommit(ctx, req.Version)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve existing tag %q: %w", req.Version, err)
		}
		return nil, domain.NewConfigError(
			"invalid version %q: this tag is already present on commit %s",
			req.Version, taggedCommit,
		)
	}
	return commit, nil
}

// stageReleasePatch moves staged-but-uncommitted changes onto the scratch
// branch as a plain "release" commit. It reports whether such a patch was
// present.
func (o *UpdateOrchestrator) stageReleasePatch(
	ctx context.Context,
	scratchBranch string,
	identity domain.CommitIdentity,
) (bool, error) {
	if err := o.gitSvc.StashStaged(ctx); err != nil {
		return false, err
	}
	if err := o.gitSvc.Clean(ctx); err != nil {
		return false, err
	}
	dirty, err := o.gitRepo.IsDirty(ctx)
	if err != nil {
		return false, err
	}
	if dirty {
		return false, domain.NewConfigError(
			"invalid state: the repository contains local changes which have not been staged. " +
				"Only staged changes can be merged into the release branch",
		)
	}
	if err := o.gitSvc.Checkout(ctx, scratchBranch); err != nil {
		return false, err
	}
	patchPresent, err := o.gitSvc.StashPop(ctx)
	if err != nil {
		return false, err
	}
	if patchPresent {
		o.log.Info("Applying local changes to the release")
		if err := o.gitSvc.AddAll(ctx); err != nil {
			return false, err
		}
		if err := o.gitSvc.Commit(ctx, "release", service.CommitOptions{Identity: identity}); err != nil {
			return false, err
		}
	}
	return patchPresent, nil
}

// updateReleaseBranch checks out (or seeds) the release branch, merges the
// target commit and the release patch, amends the release message and tags
// the result.
func (o *UpdateOrchestrator) updateReleaseBranch(
	ctx context.Context,
	req *domain.UpdateRequest,
	commit *domain.Commit,
	scratchBranch string,
	patchPresent bool,
	identity domain.CommitIdentity,
) error {
	branchExists, err := o.gitRepo.BranchExists(ctx, req.ReleaseBranch)
	if err != nil {
		return err
	}
	if branchExists {
		if err := o.gitSvc.Checkout(ctx, req.ReleaseBranch); err != nil {
			return err
		}
	} else {
		// Seeding from an orphan branch keeps the first merge commit
		// structurally identical to later ones
		if err := o.gitSvc.CheckoutOrphan(ctx, req.ReleaseBranch); err != nil {
			return err
		}
		if err := o.gitSvc.Commit(ctx, "initialize release branch", service.CommitOptions{
			AllowEmpty: true,
			Identity:   identity,
		}); err != nil {
			return err
		}
	}

	o.log.Info("Release version", zap.String("version", req.Version))

	o.log.Info("Merging changes into the release branch")
	if err := o.gitSvc.MergeTheirs(ctx, commit.Hash, "merge: upstream changes", identity); err != nil {
		return err
	}

	if patchPresent {
		o.log.Info("Merging release patch into the release branch")
		if err := o.gitSvc.MergeTheirs(ctx, scratchBranch, "merge: release patch", identity); err != nil {
			return err
		}
		// Collapse the patch merge so its changes land in the final commit
		if err := o.gitSvc.ResetSoft(ctx, "HEAD~1"); err != nil {
			return err
		}
	}

	if err := o.gitSvc.Commit(ctx, req.FinalCommitMessage(), service.CommitOptions{
		Amend:    true,
		Identity: identity,
	}); err != nil {
		return err
	}

	o.log.Info("Tagging release", zap.String("tag", req.Version))
	return o.gitSvc.TagAnnotated(ctx, req.Version, req.ReleaseMessage(), identity)
}

// push publishes the release branch and tag, honoring prompt and dry-run.
func (o *UpdateOrchestrator) push(ctx context.Context, req *domain.UpdateRequest) error {
	if req.Prompt {
		confirmed, err := o.confirm(
			fmt.Sprintf("Push release branch %q to remote?", req.ReleaseBranch),
		)
		if err != nil {
			return err
		}
		if !confirmed {
			return domain.ErrAborted
		}
	}
	if req.DryRun {
		o.log.Info("Running in dry-run mode, git push is skipped")
		return nil
	}
	o.log.Info("Pushing release branch to remote",
		zap.String("branch", req.ReleaseBranch),
		zap.String("remote", req.RemoteName),
	)
	return o.gitSvc.Push(ctx, req.RemoteName, req.ReleaseBranch)
}

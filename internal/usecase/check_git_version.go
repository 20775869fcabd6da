package usecase

import (
	"context"

	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/service"
)

// CheckGitVersionUseCase fails fast when the installed git is too old for
// the operations the updater depends on.

type CheckGitVersionUseCase struct {
	GitSvc   service.GitService
	MinMajor uint64
	MinMinor uint64
}

// Execute queries and parses the git version and compares it against the
// required minimum, major then minor.
func (uc *CheckGitVersionUseCase) Execute(ctx context.Context) error {
	out, err := uc.GitSvc.Version(ctx)
	if err != nil {
		return err
	}
	v, err := domain.ParseGitVersion(out)
	if err != nil {
		return err
	}
	if !v.AtLeast(uc.MinMajor, uc.MinMinor) {
		return domain.NewConfigError(
			"git version %s detected, version %d.%d or newer is required",
			v.Short(), uc.MinMajor, uc.MinMinor,
		)
	}
	return nil
}

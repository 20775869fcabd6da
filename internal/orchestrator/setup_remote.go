package orchestrator

import (
	"context"

	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/repository"
	"github.com/compozy/releasebranch/internal/usecase"
	"go.uber.org/zap"
)

// SetupRemoteOrchestrator configures the authenticated git remote used for
// accessing the release branch.
type SetupRemoteOrchestrator struct {
	gitRepo repository.GitRepository
	log     *zap.Logger
}

// NewSetupRemoteOrchestrator creates a new setup-remote orchestrator.
func NewSetupRemoteOrchestrator(gitRepo repository.GitRepository, log *zap.Logger) *SetupRemoteOrchestrator {
	return &SetupRemoteOrchestrator{gitRepo: gitRepo, log: log}
}

// Execute builds the credential-embedded URL and creates or updates the
// remote. Idempotent.
func (o *SetupRemoteOrchestrator) Execute(ctx context.Context, req *domain.SetupRemoteRequest) error {
	if err := ValidateRemoteName(req.RemoteName); err != nil {
		return err
	}
	if req.AccessToken == "" {
		return domain.NewConfigError(
			"access token is required: pass --access-token or set GIT_REMOTE_ACCESS_TOKEN",
		)
	}

	buildURL := &usecase.BuildRemoteURLUseCase{}
	remoteURL, err := buildURL.Execute(ctx, req.RepositoryURL, req.User, req.AccessToken)
	if err != nil {
		return err
	}

	configure := &usecase.ConfigureRemoteUseCase{GitRepo: o.gitRepo, Log: o.log}
	return configure.Execute(ctx, req.RemoteName, remoteURL)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/releasebranch/internal/repository"
	"go.uber.org/zap"
)

// ConfigureRemoteUseCase ensures a named remote points at a given URL.

type ConfigureRemoteUseCase struct {
	GitRepo repository.GitRepository
	Log     *zap.Logger
}

// Execute creates the remote or replaces its URL. Idempotent.
func (uc *ConfigureRemoteUseCase) Execute(ctx context.Context, remoteName, remoteURL string) error {
	created, err := uc.GitRepo.CreateOrUpdateRemote(ctx, remoteName, remoteURL)
	if err != nil {
		return fmt.Errorf("failed to configure remote %q: %w", remoteName, err)
	}
	if created {
		uc.Log.Info("New remote created", zap.String("remote", remoteName))
	} else {
		uc.Log.Info("Remote already exists, URL updated", zap.String("remote", remoteName))
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/compozy/releasebranch/internal/domain"
)

// BuildRemoteURLUseCase embeds credentials into a repository URL.

type BuildRemoteURLUseCase struct{}

// Execute returns repositoryURL with `user:token` as the authority's
// userinfo, preserving scheme, host, path, query and fragment. Preexisting
// userinfo is overwritten.
func (uc *BuildRemoteURLUseCase) Execute(_ context.Context, repositoryURL, user, token string) (string, error) {
	u, err := url.Parse(repositoryURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse repository URL %q: %w", repositoryURL, err)
	}
	if u.Host == "" {
		return "", domain.NewConfigError("repository URL %q has no host", repositoryURL)
	}
	u.User = url.UserPassword(user, token)
	return u.String(), nil
}

package usecase

import (
	"context"
	"os"
	"strings"

	"github.com/compozy/releasebranch/internal/config"
	"github.com/compozy/releasebranch/internal/domain"
)

// EnsureCIUseCase refuses to run outside a recognized CI environment. The
// updater force-cleans untracked files and rewrites history; it must never
// run against a developer's working copy by accident.

type EnsureCIUseCase struct{}

// Execute fails with a configuration error unless a CI indicator variable is
// set.
func (uc *EnsureCIUseCase) Execute(_ context.Context) error {
	indicators := config.CIIndicators()
	for _, name := range indicators {
		if os.Getenv(name) != "" {
			return nil
		}
	}
	return domain.NewConfigError(
		"this command must be run in a CI environment (none of %s is set)",
		strings.Join(indicators, ", "),
	)
}

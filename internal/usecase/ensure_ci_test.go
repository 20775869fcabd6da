package usecase

import (
	"context"
	"testing"

	"github.com/compozy/releasebranch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
}

func TestEnsureCIUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	uc := &EnsureCIUseCase{}
	t.Run("Should pass when CI is set", func(t *testing.T) {
		clearCIEnv(t)
		t.Setenv("CI", "true")
		require.NoError(t, uc.Execute(ctx))
	})
	t.Run("Should pass when GITHUB_ACTIONS is set", func(t *testing.T) {
		clearCIEnv(t)
		t.Setenv("GITHUB_ACTIONS", "true")
		require.NoError(t, uc.Execute(ctx))
	})
	t.Run("Should pass when GITLAB_CI is set", func(t *testing.T) {
		clearCIEnv(t)
		t.Setenv("GITLAB_CI", "true")
		require.NoError(t, uc.Execute(ctx))
	})
	t.Run("Should fail with a configuration error outside CI", func(t *testing.T) {
		clearCIEnv(t)
		err := uc.Execute(ctx)
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
		assert.Contains(t, err.Error(), "CI environment")
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/compozy/releasebranch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGitVersionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	newUC := func(svc *mockGitService) *CheckGitVersionUseCase {
		return &CheckGitVersionUseCase{GitSvc: svc, MinMajor: 2, MinMinor: 35}
	}
	t.Run("Should accept the exact minimum version", func(t *testing.T) {
		svc := new(mockGitService)
		svc.On("Version", ctx).Return("git version 2.35.0", nil)
		require.NoError(t, newUC(svc).Execute(ctx))
		svc.AssertExpectations(t)
	})
	t.Run("Should accept a newer version", func(t *testing.T) {
		svc := new(mockGitService)
		svc.On("Version", ctx).Return("git version 2.40.2\n", nil)
		require.NoError(t, newUC(svc).Execute(ctx))
	})
	t.Run("Should reject an older version with a configuration error", func(t *testing.T) {
		svc := new(mockGitService)
		svc.On("Version", ctx).Return("git version 2.34.1", nil)
		err := newUC(svc).Execute(ctx)
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
		assert.Contains(t, err.Error(), "2.34")
		assert.Contains(t, err.Error(), "2.35")
	})
	t.Run("Should surface unparseable output", func(t *testing.T) {
		svc := new(mockGitService)
		svc.On("Version", ctx).Return("git version mystery", nil)
		err := newUC(svc).Execute(ctx)
		require.Error(t, err)
		assert.False(t, domain.IsConfigError(err))
	})
	t.Run("Should surface command failure", func(t *testing.T) {
		svc := new(mockGitService)
		svc.On("Version", ctx).Return("", errors.New("exec failed"))
		err := newUC(svc).Execute(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exec failed")
	})
}

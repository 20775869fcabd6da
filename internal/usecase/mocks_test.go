package usecase

import (
	"context"

	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/service"
	"github.com/stretchr/testify/mock"
)

// Mock for repository.GitRepository
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) Path() string {
	args := m.Called()
	return args.String(0)
}
func (m *mockGitRepository) FetchRemoteBranches(ctx context.Context, remoteName string) ([]string, error) {
	args := m.Called(ctx, remoteName)
	if branches := args.Get(0); branches != nil {
		return branches.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGitRepository) TagExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) TagCommit(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) ResolveCommit(ctx context.Context, rev string) (*domain.Commit, error) {
	args := m.Called(ctx, rev)
	if commit := args.Get(0); commit != nil {
		return commit.(*domain.Commit), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGitRepository) CreateBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *mockGitRepository) BranchExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) DeleteBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *mockGitRepository) IsDirty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) CreateOrUpdateRemote(ctx context.Context, name, url string) (bool, error) {
	args := m.Called(ctx, name, url)
	return args.Bool(0), args.Error(1)
}

// Mock for service.GitService
type mockGitService struct{ mock.Mock }

func (m *mockGitService) Version(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockGitService) StashStaged(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockGitService) StashPop(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitService) Clean(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockGitService) Checkout(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *mockGitService) CheckoutOrphan(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *mockGitService) AddAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockGitService) Commit(ctx context.Context, message string, opts service.CommitOptions) error {
	args := m.Called(ctx, message, opts)
	return args.Error(0)
}
func (m *mockGitService) MergeTheirs(ctx context.Context, rev, message string, id domain.CommitIdentity) error {
	args := m.Called(ctx, rev, message, id)
	return args.Error(0)
}
func (m *mockGitService) ResetSoft(ctx context.Context, rev string) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}
func (m *mockGitService) TagAnnotated(ctx context.Context, name, message string, id domain.CommitIdentity) error {
	args := m.Called(ctx, name, message, id)
	return args.Error(0)
}
func (m *mockGitService) Push(ctx context.Context, remote, branch string) error {
	args := m.Called(ctx, remote, branch)
	return args.Error(0)
}

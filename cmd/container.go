package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/compozy/releasebranch/internal/config"
	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/logger"
	"github.com/compozy/releasebranch/internal/repository"
	"github.com/compozy/releasebranch/internal/service"
	"github.com/compozy/releasebranch/internal/usecase"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// container holds the dependencies shared by all commands.
type container struct {
	cfg    *config.Config
	fsRepo repository.FileSystemRepository
}

func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	return &container{cfg: cfg, fsRepo: fsRepo}, nil
}

// logger is built per invocation, after flag parsing, so --debug is honored.
func (c *container) logger() *zap.Logger {
	return logger.New(c.cfg.Debug || debugFlag)
}

// resolveRepositoryPath defaults to the current working directory and
// requires the result to be an existing directory.
func (c *container) resolveRepositoryPath(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository path %q: %w", path, err)
	}
	ok, err := afero.DirExists(c.fsRepo, abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat repository path %q: %w", abs, err)
	}
	if !ok {
		return "", domain.NewConfigError("repository path %q is not an existing directory", abs)
	}
	return abs, nil
}

// runGuards refuses to run outside CI and on git versions older than the
// required minimum.
func (c *container) runGuards(ctx context.Context, gitSvc service.GitService) error {
	ensureCI := &usecase.EnsureCIUseCase{}
	if err := ensureCI.Execute(ctx); err != nil {
		return err
	}
	checkVersion := &usecase.CheckGitVersionUseCase{
		GitSvc:   gitSvc,
		MinMajor: config.MinGitMajor,
		MinMinor: config.MinGitMinor,
	}
	return checkVersion.Execute(ctx)
}

func addRepositoryPathFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "repository-path", "",
		"The path of the git repository; in GitLab CI jobs CI_PROJECT_DIR can be used, "+
			"in GitHub Actions GITHUB_WORKSPACE (defaults to the current working directory)")
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(newUpdateCmd(c))
	rootCmd.AddCommand(newSetupRemoteCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}

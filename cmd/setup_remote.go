package cmd

import (
	"github.com/compozy/releasebranch/internal/config"
	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/orchestrator"
	"github.com/compozy/releasebranch/internal/repository"
	"github.com/compozy/releasebranch/internal/service"
	"github.com/spf13/cobra"
)

// newSetupRemoteCmd creates the setup-remote command
func newSetupRemoteCmd(c *container) *cobra.Command {
	var (
		repositoryURL  string
		accessToken    string
		user           string
		repositoryPath string
		remoteName     string
	)
	cmd := &cobra.Command{
		Use:   "setup-remote",
		Short: "Configure the git remote for accessing the release branch",
		Long: `Configure the git remote for accessing the release branch.

Embeds the given user and access token into the repository URL and creates
the remote, or replaces its URLs if it already exists. Safe to run on every
CI job.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := c.logger()
			defer func() { _ = log.Sync() }()
			path, err := c.resolveRepositoryPath(repositoryPath)
			if err != nil {
				return err
			}
			gitSvc := service.NewGitService(path)
			if err := c.runGuards(cmd.Context(), gitSvc); err != nil {
				return err
			}
			gitRepo, err := repository.NewGitRepository(path)
			if err != nil {
				return err
			}
			token := accessToken
			if token == "" {
				token = c.cfg.AccessToken
			}
			orch := orchestrator.NewSetupRemoteOrchestrator(gitRepo, log)
			return orch.Execute(cmd.Context(), &domain.SetupRemoteRequest{
				RepositoryURL: repositoryURL,
				User:          user,
				AccessToken:   token,
				RemoteName:    remoteName,
			})
		},
	}
	cmd.Flags().StringVar(&repositoryURL, "repository-url", "",
		"The GitLab or GitHub URL of the repository, e.g. https://gitlab.com/foo/bar.git; "+
			"in GitLab CI jobs CI_REPOSITORY_URL can be used")
	cmd.Flags().StringVar(&accessToken, "access-token", "",
		"The token to use when accessing the git remote; "+
			"can also be provided via the GIT_REMOTE_ACCESS_TOKEN environment variable")
	cmd.Flags().StringVar(&user, "user", "",
		"The user to use when accessing the git remote; "+
			"in GitLab CI jobs using the CI_JOB_TOKEN this must be gitlab-ci-token")
	addRepositoryPathFlag(cmd, &repositoryPath)
	cmd.Flags().StringVar(&remoteName, "git-remote-name", config.DefaultRemoteName,
		"The name of the git remote to set up (will be created if necessary)")
	_ = cmd.MarkFlagRequired("repository-url")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

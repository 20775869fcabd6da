package cmd

import (
	"github.com/compozy/releasebranch/internal/config"
	"github.com/compozy/releasebranch/internal/domain"
	"github.com/compozy/releasebranch/internal/orchestrator"
	"github.com/compozy/releasebranch/internal/repository"
	"github.com/compozy/releasebranch/internal/service"
	"github.com/spf13/cobra"
)

// newUpdateCmd creates the update command
func newUpdateCmd(c *container) *cobra.Command {
	var (
		version        string
		releaseBranch  string
		commitMsg      string
		updateTo       string
		repositoryPath string
		remoteName     string
		gitUserName    string
		gitUserEmail   string
		dryRun         bool
		prompt         bool
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the release branch with the latest changes",
		Long: `Update the release branch with the latest changes.

The release branch is created from scratch on first use. Upstream changes up
to --update-to (or the latest commit) are folded into it as a merge commit,
together with any changes staged in the index at invocation time. The merge
commit is tagged with --version and, unless --dry-run is given, pushed to the
remote along with its tag.`,
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
			lock := repository.NewRepositoryLock(path)
			orch := orchestrator.NewUpdateOrchestrator(gitRepo, gitSvc, lock, log)
			return orch.Execute(cmd.Context(), &domain.UpdateRequest{
				Version:       version,
				ReleaseBranch: releaseBranch,
				CommitMessage: commitMsg,
				UpdateTo:      updateTo,
				RemoteName:    remoteName,
				Identity: domain.CommitIdentity{
					Name:  gitUserName,
					Email: gitUserEmail,
				},
				DryRun: dryRun,
				Prompt: prompt,
			})
		},
	}
	cmd.Flags().StringVar(&version, "version", "",
		"The release version; the merge commit on the release branch is tagged with this value")
	cmd.Flags().StringVar(&releaseBranch, "release-branch", "",
		"The name of the release branch to be updated")
	cmd.Flags().StringVar(&commitMsg, "commit-msg", "",
		`The commit message for the merge commit on the release branch (defaults to "release <version>")`)
	cmd.Flags().StringVar(&updateTo, "update-to", "",
		"The commit up to which changes are merged; in GitLab CI jobs CI_COMMIT_SHA can be used, "+
			"in GitHub Actions GITHUB_SHA (defaults to the latest commit)")
	addRepositoryPathFlag(cmd, &repositoryPath)
	cmd.Flags().StringVar(&remoteName, "git-remote-name", config.DefaultRemoteName,
		"The name of the git remote to use for accessing the release branch")
	cmd.Flags().StringVar(&gitUserName, "git-user-name", "",
		"The author/committer name to use for the merge commit on the release branch")
	cmd.Flags().StringVar(&gitUserEmail, "git-user-email", "",
		"The author/committer email address to use for the merge commit on the release branch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Update the release branch locally without pushing it to the remote")
	cmd.Flags().BoolVar(&prompt, "prompt", false,
		"Prompt for confirmation before pushing to the release branch")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("release-branch")
	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:           "release-branch",
	Short:         "A tool for maintaining a release branch in git repositories",
	Long:          `release-branch maintains a long-lived release branch: it folds the latest upstream changes (plus any staged patch) into the branch as merge commits, tags the result, and pushes it to the configured remote.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Run in debug mode (verbose logging)")
}

func Execute() error {
	return rootCmd.Execute()
}

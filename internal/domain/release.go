package domain

// UpdateRequest describes a single release-branch update run.
type UpdateRequest struct {
	// Version is the release version; the merge commit on the release branch
	// is tagged with it.
	Version string
	// ReleaseBranch is the name of the branch that accumulates releases.
	ReleaseBranch string
	// CommitMessage overrides the message of the final release commit.
	CommitMessage string
	// UpdateTo is the commit up to which changes are merged. Empty means HEAD.
	UpdateTo string
	// RemoteName is the git remote used for fetching and pushing.
	RemoteName string
	// Identity carries optional author/committer overrides.
	Identity CommitIdentity
	// DryRun updates the release branch locally without pushing it.
	DryRun bool
	// Prompt asks for confirmation before pushing.
	Prompt bool
}

// ReleaseMessage returns the canonical "release <version>" message used for
// the annotated tag and, absent an override, the final commit.
func (r *UpdateRequest) ReleaseMessage() string {
	return "release " + r.Version
}

// FinalCommitMessage returns the message for the amended release commit.
func (r *UpdateRequest) FinalCommitMessage() string {
	if r.CommitMessage != "" {
		return r.CommitMessage
	}
	return r.ReleaseMessage()
}

// SetupRemoteRequest describes a single setup-remote run.
type SetupRemoteRequest struct {
	RepositoryURL string
	User          string
	AccessToken   string
	RemoteName    string
}

package domain

import "time"

// Commit is a resolved commit in the target repository.
type Commit struct {
	Hash        string
	CommittedAt time.Time
}

// CommitIdentity carries author/committer overrides for a bounded sequence of
// commit-producing git invocations. The zero value leaves the repository's
// own configuration in effect.
type CommitIdentity struct {
	Name  string
	Email string
	// AuthorDate pins the author date of produced commits, normally to the
	// committed time of the commit being released.
	AuthorDate time.Time
}

// Env returns the GIT_* environment entries for a single git invocation.
// Identity and timestamp are scoped to the subprocess rather than mutated
// process-wide, so concurrent callers cannot observe each other's overrides.
func (id CommitIdentity) Env() []string {
	var env []string
	if !id.AuthorDate.IsZero() {
		env = append(env, "GIT_AUTHOR_DATE="+id.AuthorDate.Format(time.RFC3339))
	}
	if id.Name != "" {
		env = append(env, "GIT_AUTHOR_NAME="+id.Name, "GIT_COMMITTER_NAME="+id.Name)
	}
	if id.Email != "" {
		env = append(env, "GIT_AUTHOR_EMAIL="+id.Email, "GIT_COMMITTER_EMAIL="+id.Email)
	}
	return env
}

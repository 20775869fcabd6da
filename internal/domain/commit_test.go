package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitIdentity_Env(t *testing.T) {
	t.Run("Should return nothing for zero identity", func(t *testing.T) {
		assert.Empty(t, CommitIdentity{}.Env())
	})
	t.Run("Should set author date only when no name or email given", func(t *testing.T) {
		when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
		env := CommitIdentity{AuthorDate: when}.Env()
		assert.Equal(t, []string{"GIT_AUTHOR_DATE=2024-03-01T12:30:00Z"}, env)
	})
	t.Run("Should set author and committer for name and email", func(t *testing.T) {
		env := CommitIdentity{Name: "CI Bot", Email: "ci@example.com"}.Env()
		assert.ElementsMatch(t, []string{
			"GIT_AUTHOR_NAME=CI Bot",
			"GIT_COMMITTER_NAME=CI Bot",
			"GIT_AUTHOR_EMAIL=ci@example.com",
			"GIT_COMMITTER_EMAIL=ci@example.com",
		}, env)
	})
}

func TestUpdateRequest_FinalCommitMessage(t *testing.T) {
	t.Run("Should default to release message", func(t *testing.T) {
		req := &UpdateRequest{Version: "1.2.3"}
		assert.Equal(t, "release 1.2.3", req.FinalCommitMessage())
	})
	t.Run("Should honor explicit commit message", func(t *testing.T) {
		req := &UpdateRequest{Version: "1.2.3", CommitMessage: "ship it"}
		assert.Equal(t, "ship it", req.FinalCommitMessage())
		assert.Equal(t, "release 1.2.3", req.ReleaseMessage())
	})
}

package orchestrator

import (
	"regexp"
	"strings"

	"github.com/compozy/releasebranch/internal/domain"
)

var (
	// refNameRegex matches the characters accepted for tag and branch names
	refNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)
	// remoteNameRegex matches valid git remote names
	remoteNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// ValidateVersionTag validates the version string used as a tag name.
func ValidateVersionTag(version string) error {
	if version == "" {
		return domain.NewConfigError("version cannot be empty")
	}
	if len(version) > 255 {
		return domain.NewConfigError("version too long: %d characters (max: 255)", len(version))
	}
	if strings.HasPrefix(version, "-") {
		return domain.NewConfigError("version cannot start with a dash: %s", version)
	}
	if strings.Contains(version, "..") {
		return domain.NewConfigError("version cannot contain consecutive dots: %s", version)
	}
	if !refNameRegex.MatchString(version) {
		return domain.NewConfigError("invalid version format: %s", version)
	}
	return nil
}

// ValidateBranchName validates a git branch name.
func ValidateBranchName(branch string) error {
	if branch == "" {
		return domain.NewConfigError("branch name cannot be empty")
	}
	if len(branch) > 255 {
		return domain.NewConfigError("branch name too long: %d characters (max: 255)", len(branch))
	}
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return domain.NewConfigError("branch name cannot start or end with slash: %s", branch)
	}
	if strings.HasPrefix(branch, "-") {
		return domain.NewConfigError("branch name cannot start with a dash: %s", branch)
	}
	if strings.Contains(branch, "..") {
		return domain.NewConfigError("branch name cannot contain consecutive dots: %s", branch)
	}
	if strings.HasSuffix(branch, ".lock") {
		return domain.NewConfigError("branch name cannot end with .lock: %s", branch)
	}
	if !refNameRegex.MatchString(branch) {
		return domain.NewConfigError("invalid branch name format: %s", branch)
	}
	return nil
}

// ValidateRemoteName validates a git remote name.
func ValidateRemoteName(remote string) error {
	if remote == "" {
		return domain.NewConfigError("remote name cannot be empty")
	}
	if !remoteNameRegex.MatchString(remote) {
		return domain.NewConfigError("invalid remote name format: %s", remote)
	}
	return nil
}

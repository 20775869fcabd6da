package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// GitVersion wraps the parsed version of the installed git binary.
type GitVersion struct {
	*semver.Version
}

// ParseGitVersion extracts the numeric version from `git --version` output,
// e.g. "git version 2.39.2". Unparseable output is surfaced as an error
// rather than silently ignored.
func ParseGitVersion(output string) (*GitVersion, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty git version output")
	}
	raw := fields[len(fields)-1]
	// "git version 2.39.2 (Apple Git-143)" puts the number third, not last
	if len(fields) >= 3 && fields[0] == "git" && fields[1] == "version" {
		raw = fields[2]
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse git version %q: %w", raw, err)
	}
	return &GitVersion{v}, nil
}

// AtLeast reports whether the version is at least major.minor, compared on
// the major then minor components only.
func (v *GitVersion) AtLeast(major, minor uint64) bool {
	if v.Major() != major {
		return v.Major() > major
	}
	return v.Minor() >= minor
}

// Short returns the major.minor form used in error messages.
func (v *GitVersion) Short() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

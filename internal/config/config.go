package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Minimum git version required for `git stash push --staged`.
const (
	MinGitMajor uint64 = 2
	MinGitMinor uint64 = 35
)

// DefaultRemoteName is the git remote used when none is specified.
const DefaultRemoteName = "origin"

type Config struct {
	// AccessToken authenticates against the git remote; sourced from the
	// GIT_REMOTE_ACCESS_TOKEN environment variable when not passed as a flag.
	AccessToken string `mapstructure:"access_token"`
	Debug       bool   `mapstructure:"debug"`
}

// CIIndicators lists the environment variables recognized as "running under
// CI". Any one of them being set satisfies the CI guard.
func CIIndicators() []string {
	return []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI"}
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".release-branch")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix("RELEASE_BRANCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// BindEnv allows multiple env vars - they are checked in order
	if err := v.BindEnv("access_token", "GIT_REMOTE_ACCESS_TOKEN", "RELEASE_BRANCH_ACCESS_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind access_token env: %w", err)
	}
	if err := v.BindEnv("debug", "RELEASE_BRANCH_DEBUG"); err != nil {
		return nil, fmt.Errorf("failed to bind debug env: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

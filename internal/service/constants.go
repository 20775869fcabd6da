package service

import "time"

// Timeout constants for service operations
const (
	// DefaultGitTimeout is the timeout for local git operations
	DefaultGitTimeout = 60 * time.Second
	// DefaultGitPushTimeout is the timeout for git operations touching the network
	DefaultGitPushTimeout = 5 * time.Minute
)

package domain

import (
	"errors"
	"fmt"
)

// ErrAborted is returned when the operator declines the push confirmation.
// It is an ordinary non-zero exit, not a crash.
var ErrAborted = errors.New("push not confirmed, aborting")

// ConfigError marks a user or input mistake: CI indicator absent, git too
// old, version tag already used, rejected dirty state. Always fatal, never
// retried.
type ConfigError struct {
	msg string
}

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return e.msg
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

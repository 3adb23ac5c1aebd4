// Where: internal/usecase/generate/errors.go
// What: Typed failures for settings generation.
// Why: Let callers tell configuration problems from I/O problems with errors.As.
package generate

import (
	"errors"
	"fmt"
)

var (
	errEnvironmentNotConfigured = errors.New("environment view is not configured")
	errOutputDirRequired        = errors.New("output directory is required")
)

// MissingEnvironmentVariableError reports a required variable that is unset.
type MissingEnvironmentVariableError struct {
	Name string
}

func (e *MissingEnvironmentVariableError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Name)
}

// WriteFailureError reports a settings file that could not be written.
type WriteFailureError struct {
	Path string
	Err  error
}

func (e *WriteFailureError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteFailureError) Unwrap() error {
	return e.Err
}

package sandboxprobe

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the sandboxprobe package.
var (
	// ErrSetup indicates a probe precondition failed before the restricted
	// operation could be attempted. Classify maps it to VerdictProbeError
	// even when the underlying error carries a permission errno, because a
	// failed setup step says nothing about the policy under test.
	ErrSetup = errors.New("sandboxprobe: probe setup failed")

	// ErrUnsupportedPlatform indicates the restricted operation cannot be
	// attempted on the current OS/architecture.
	ErrUnsupportedPlatform = errors.New("sandboxprobe: unsupported platform")

	// ErrBadResultLine indicates a line does not conform to the result
	// line grammar.
	ErrBadResultLine = errors.New("sandboxprobe: malformed result line")
)

// SetupError reports a failed probe precondition. It wraps both ErrSetup
// and the underlying error, so errors.Is(err, ErrSetup) works and the
// original error code stays reachable for diagnostics.
type SetupError struct {
	// Op names the setup step that failed.
	Op string
	// Err is the underlying error.
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSetup.Error(), e.Op, e.Err)
}

func (e *SetupError) Unwrap() []error {
	return []error{ErrSetup, e.Err}
}

package sandboxprobe

import (
	"fmt"
	"syscall"
)

// Verdict is the categorical result of a single restricted-operation attempt.
type Verdict int

const (
	// VerdictBlocked means the operation was denied with a permission-class
	// error. For a restrictive sandbox this is the expected outcome.
	VerdictBlocked Verdict = iota

	// VerdictAllowed means the operation succeeded. The probe itself worked,
	// but the sandbox failed to restrict the operation.
	VerdictAllowed

	// VerdictProbeError means the probe could not meaningfully attempt the
	// operation: a setup step failed, the platform is unsupported, or the
	// operation failed with a non-permission error. The run is inconclusive
	// and carries no security verdict.
	VerdictProbeError
)

// String returns the string representation of a Verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictBlocked:
		return "blocked"
	case VerdictAllowed:
		return "allowed"
	case VerdictProbeError:
		return "probe-error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one probe invocation. Exactly one Outcome is
// produced per process; the result line and exit status are derived from it.
type Outcome struct {
	// Verdict is the categorical result used for pass/fail logic.
	Verdict Verdict

	// Errno is the platform error code observed during the attempt. It is
	// diagnostic only: meaningful for VerdictBlocked and VerdictProbeError,
	// zero for VerdictAllowed and for failures without an errno.
	Errno syscall.Errno
}

// Blocked returns the Outcome for an operation denied with errno.
func Blocked(errno syscall.Errno) Outcome {
	return Outcome{Verdict: VerdictBlocked, Errno: errno}
}

// Allowed returns the Outcome for an operation that succeeded.
func Allowed() Outcome {
	return Outcome{Verdict: VerdictAllowed}
}

// ProbeError returns the Outcome for an inconclusive probe run. errno may be
// zero when the failure carried no platform error code.
func ProbeError(errno syscall.Errno) Outcome {
	return Outcome{Verdict: VerdictProbeError, Errno: errno}
}

// Line returns the result line for the Outcome, without a trailing newline.
// The line follows the fixed grammar documented in the package comment.
func (o Outcome) Line() string {
	switch o.Verdict {
	case VerdictAllowed:
		return TagAllowed
	case VerdictBlocked:
		return fmt.Sprintf("%s: %d", TagBlocked, int(o.Errno))
	default:
		return fmt.Sprintf("%s: %d", TagProbeError, int(o.Errno))
	}
}

// Exit statuses derived from an Outcome. Both VerdictBlocked and
// VerdictAllowed exit with ExitOK: the probe measured successfully either
// way, and the security verdict lives in the result line, not the exit code.
const (
	ExitOK         = 0
	ExitProbeError = 1
)

// ExitCode returns the process exit status for the Outcome.
func (o Outcome) ExitCode() int {
	if o.Verdict == VerdictProbeError {
		return ExitProbeError
	}
	return ExitOK
}

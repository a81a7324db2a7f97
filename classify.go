package sandboxprobe

import (
	"errors"
	"syscall"
)

// Classify maps the error from a restricted-operation attempt to an Outcome.
//
//   - nil means the operation succeeded: VerdictAllowed.
//   - An error wrapping ErrSetup means a probe precondition failed:
//     VerdictProbeError, regardless of any errno it carries.
//   - A permission-class errno (EPERM, EACCES) means the sandbox denied the
//     operation: VerdictBlocked.
//   - Any other errno, or an error carrying no errno at all, means the probe
//     environment malfunctioned: VerdictProbeError. Folding these into
//     VerdictBlocked would let an unrelated failure (say, fd exhaustion)
//     masquerade as a policy deny.
func Classify(err error) Outcome {
	if err == nil {
		return Allowed()
	}

	errno := errnoOf(err)
	if errors.Is(err, ErrSetup) {
		return ProbeError(errno)
	}

	switch errno {
	case syscall.EPERM, syscall.EACCES:
		return Blocked(errno)
	}
	return ProbeError(errno)
}

// errnoOf extracts the platform error code from err, unwrapping through
// os.SyscallError, net.OpError, and similar wrappers. Returns zero when no
// errno is present.
func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

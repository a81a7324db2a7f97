package sandboxprobe

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
)

// Result line tags. Each probe prints exactly one line starting with one of
// these, newline-terminated, and nothing else on stdout.
const (
	TagBlocked    = "FORBIDDEN_BLOCKED"
	TagAllowed    = "FORBIDDEN_ALLOWED"
	TagProbeError = "PROBE_ERROR"
)

// ParseLine parses a result line back into an Outcome. It accepts a single
// optional trailing newline and nothing else beyond the grammar; anything
// malformed returns an error wrapping ErrBadResultLine.
//
// ParseLine is the orchestrator-facing half of the contract: suite code that
// captures probe stdout can consume it without ad-hoc string matching. Note
// that an empty capture means the probe terminated abnormally before
// producing a line; that case is a distinct, uncategorized failure and is
// deliberately not representable as an Outcome.
func ParseLine(line string) (Outcome, error) {
	line = strings.TrimSuffix(line, "\n")

	if line == TagAllowed {
		return Allowed(), nil
	}
	if rest, ok := strings.CutPrefix(line, TagBlocked+": "); ok {
		errno, err := parseErrno(rest)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: %q", ErrBadResultLine, line)
		}
		return Blocked(errno), nil
	}
	if rest, ok := strings.CutPrefix(line, TagProbeError+": "); ok {
		errno, err := parseErrno(rest)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: %q", ErrBadResultLine, line)
		}
		return ProbeError(errno), nil
	}

	return Outcome{}, fmt.Errorf("%w: %q", ErrBadResultLine, line)
}

// parseErrno parses the numeric error code payload of a result line.
// Codes are canonical non-negative decimal integers: no sign, no padding,
// no leading zeros. Anything a probe would not itself emit is rejected.
func parseErrno(s string) (syscall.Errno, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid errno %q: %v", s, err)
	}
	if s != strconv.FormatUint(n, 10) {
		return 0, fmt.Errorf("non-canonical errno %q", s)
	}
	return syscall.Errno(n), nil
}

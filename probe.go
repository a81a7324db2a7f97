package sandboxprobe

import (
	"errors"
	"fmt"
)

// Operation is a single restricted action a probe binary attempts exactly
// once. The action under test is fixed at build time; operations carry no
// runtime configuration.
type Operation struct {
	// Name identifies the operation in optional debug logs. It does not
	// appear in the result line.
	Name string

	// Attempt performs the restricted operation once, synchronously, with
	// no retry and no timeout. On success it returns a release function
	// that frees whatever the attempt acquired (a socket fd, a mount, a
	// device node); on failure it returns the platform error. Attempts
	// must not block: the operations under test are instantaneous
	// allocation requests, and the orchestrator's only cancellation tool
	// is killing the process.
	Attempt func() (release func() error, err error)
}

// Run attempts op once and classifies the result. If the attempt succeeds,
// the acquired resource is released before Run returns, so an unexpectedly
// allowed operation never leaks a handle into the sandbox being measured.
// A release failure is logged but never alters the Outcome: the operation
// did succeed, and that is the reportable fact.
func Run(op Operation, opts ...Option) Outcome {
	ro := applyOptions(opts)

	if op.Attempt == nil {
		return Classify(&SetupError{Op: op.Name, Err: errors.New("operation has no attempt function")})
	}

	release, err := op.Attempt()
	out := Classify(err)
	if err == nil && release != nil {
		if rerr := release(); rerr != nil {
			ro.logger.Warn("release after allowed attempt failed", "probe", op.Name, "err", rerr)
		}
	}

	ro.logger.Debug("probe attempt classified",
		"probe", op.Name, "verdict", out.Verdict.String(), "errno", int(out.Errno))
	return out
}

// Main runs op, writes the single result line to stdout, and returns the
// process exit status. Probe binaries call it directly from main:
//
//	os.Exit(sandboxprobe.Main(ops.RawSocket()))
//
// Exactly one line is emitted per invocation. A failure to write the line
// returns ExitProbeError, since the orchestrator then has no result to read.
// Main never recovers from a panic in the attempt: an unhandled fault must
// surface as abnormal termination, not be masked as an Outcome.
func Main(op Operation, opts ...Option) int {
	ro := applyOptions(opts)

	out := Run(op, opts...)
	if _, err := fmt.Fprintln(ro.stdout, out.Line()); err != nil {
		ro.logger.Error("emit result line", "probe", op.Name, "err", err)
		return ExitProbeError
	}
	return out.ExitCode()
}

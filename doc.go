// Package sandboxprobe implements single-shot probes for sandbox policy
// validation.
//
// A probe is a minimal binary that attempts exactly one restricted
// operation (for example, creating a raw network socket), classifies the
// outcome, prints one machine-parsable result line on stdout, and exits
// with a deterministic status. An external orchestrator launches many
// such probes inside the sandbox under test and aggregates their verdicts
// into a certification report.
//
// The result line grammar is fixed:
//
//	FORBIDDEN_BLOCKED: <errno>   the operation was denied (expected)
//	FORBIDDEN_ALLOWED            the operation succeeded (policy gap)
//	PROBE_ERROR: <errno>         the probe could not measure anything
//
// The exit code is 0 for FORBIDDEN_BLOCKED and FORBIDDEN_ALLOWED; a
// nonzero exit is reserved for PROBE_ERROR and for the probe failing to
// run its measurement at all. Orchestrators must read the result line,
// not just the exit code, to judge the sandbox policy.
//
// Probe binaries take no flags, no environment variables, and no
// configuration; the operation under test is fixed at build time:
//
//	func main() {
//	    os.Exit(sandboxprobe.Main(ops.RawSocket()))
//	}
//
// Probes never retry: a permission check changes its meaning when
// repeated, so every probe is a single synchronous attempt per process.
package sandboxprobe

// Package sandboxtest simulates a denying sandbox around probe children so
// probe behavior can be tested without a container runtime.
//
// Tests re-execute their own test binary as a probe child: TestMain routes
// through Main, which detects the probe marker in the environment, loads an
// optional seccomp filter that fails selected syscalls with EPERM, runs the
// named probe, and exits with the probe's status. The parent captures the
// child's stdout and exit code exactly as an orchestrator would.
package sandboxtest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/zhangyunhao116/sandboxprobe"
)

// Environment markers for the re-executed probe child. They configure the
// test harness, not the probe: probe binaries themselves read nothing from
// the environment.
const (
	envProbe = "SANDBOXPROBE_TEST_PROBE"
	envDeny  = "SANDBOXPROBE_TEST_DENY"
)

// exitHarness marks failures of the child-side harness itself, distinct
// from every exit status a probe can produce.
const exitHarness = 125

// Main is the TestMain hook for packages whose tests run probes in child
// processes:
//
//	func TestMain(m *testing.M) {
//	    sandboxtest.Main(m, map[string]sandboxprobe.Operation{
//	        "raw-socket": ops.RawSocket(),
//	    })
//	}
//
// When the process is a re-executed probe child, Main runs the named probe
// and exits; otherwise it runs the tests.
func Main(m *testing.M, probes map[string]sandboxprobe.Operation) {
	if name := os.Getenv(envProbe); name != "" {
		os.Exit(runChild(name, probes))
	}
	os.Exit(m.Run())
}

// runChild applies the deny filter if requested, then hands control to the
// probe entry point. Harness failures exit with exitHarness so the parent
// can tell them apart from probe outcomes.
func runChild(name string, probes map[string]sandboxprobe.Operation) int {
	op, ok := probes[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "sandboxtest: unknown probe %q\n", name)
		return exitHarness
	}
	if deny := os.Getenv(envDeny); deny != "" {
		if err := DenyWithEPerm(strings.Split(deny, ",")...); err != nil {
			fmt.Fprintf(os.Stderr, "sandboxtest: load deny filter: %v\n", err)
			return exitHarness
		}
	}
	return sandboxprobe.Main(op)
}

// RunProbe re-executes the current test binary as the named probe child and
// returns its verbatim stdout and exit code. When denySyscalls is non-empty
// the child fails those syscalls with EPERM before the probe attempt; that
// requires Linux seccomp, and the test is skipped elsewhere.
func RunProbe(t *testing.T, name string, denySyscalls []string) (stdout string, exitCode int) {
	t.Helper()

	if len(denySyscalls) > 0 && runtime.GOOS != "linux" {
		t.Skipf("seccomp deny filter requires linux, running on %s", runtime.GOOS)
	}

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("locate test binary: %v", err)
	}

	cmd := exec.Command(exe)
	cmd.Env = append(os.Environ(), envProbe+"="+name)
	if len(denySyscalls) > 0 {
		cmd.Env = append(cmd.Env, envDeny+"="+strings.Join(denySyscalls, ","))
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err = cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("run probe child %q: %v", name, err)
		}
		code = exitErr.ExitCode()
	}
	if code == exitHarness {
		t.Fatalf("probe child %q harness failure: %s", name, errBuf.String())
	}
	return out.String(), code
}

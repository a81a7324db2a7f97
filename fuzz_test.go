package sandboxprobe

import (
	"strings"
	"testing"
)

// FuzzParseLine checks that ParseLine never panics, that accepted lines
// re-serialize to themselves, and that the exit-code rule holds for every
// outcome the parser can produce.
func FuzzParseLine(f *testing.F) {
	f.Add("FORBIDDEN_BLOCKED: 1")
	f.Add("FORBIDDEN_BLOCKED: 13\n")
	f.Add("FORBIDDEN_ALLOWED")
	f.Add("PROBE_ERROR: 12")
	f.Add("")
	f.Add("FORBIDDEN_BLOCKED: -1")
	f.Add("FORBIDDEN_ALLOWED extra")
	f.Add("FORBIDDEN_BLOCKED: 99999999999999999999")

	f.Fuzz(func(t *testing.T, line string) {
		out, err := ParseLine(line)
		if err != nil {
			return
		}

		canonical := strings.TrimSuffix(line, "\n")
		if got := out.Line(); got != canonical {
			t.Errorf("accepted line %q re-serializes to %q", line, got)
		}

		blockedOrAllowed := out.Verdict == VerdictBlocked || out.Verdict == VerdictAllowed
		if blockedOrAllowed != (out.ExitCode() == ExitOK) {
			t.Errorf("exit code rule violated for %+v: code %d", out, out.ExitCode())
		}
	})
}

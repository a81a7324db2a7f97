package sandboxprobe

import (
	"errors"
	"syscall"
	"testing"
)

func TestParseLineValid(t *testing.T) {
	tests := []struct {
		line string
		want Outcome
	}{
		{"FORBIDDEN_BLOCKED: 1", Blocked(syscall.Errno(1))},
		{"FORBIDDEN_BLOCKED: 13", Blocked(syscall.Errno(13))},
		{"FORBIDDEN_BLOCKED: 1\n", Blocked(syscall.Errno(1))},
		{"FORBIDDEN_ALLOWED", Allowed()},
		{"FORBIDDEN_ALLOWED\n", Allowed()},
		{"PROBE_ERROR: 12", ProbeError(syscall.Errno(12))},
		{"PROBE_ERROR: 0", ProbeError(0)},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q): unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q): got %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineInvalid(t *testing.T) {
	lines := []string{
		"",
		"\n",
		"FORBIDDEN_BLOCKED",
		"FORBIDDEN_BLOCKED: ",
		"FORBIDDEN_BLOCKED:1",
		"FORBIDDEN_BLOCKED: x",
		"FORBIDDEN_BLOCKED: -1",
		"FORBIDDEN_BLOCKED: 1 ",
		"FORBIDDEN_BLOCKED: 1 extra",
		"FORBIDDEN_ALLOWED extra",
		"FORBIDDEN_ALLOWED: 1",
		"PROBE_ERROR",
		"PROBE_ERROR: +1",
		"forbidden_blocked: 1",
		"something else entirely",
		"FORBIDDEN_BLOCKED: 1\nFORBIDDEN_ALLOWED",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if _, err := ParseLine(line); !errors.Is(err, ErrBadResultLine) {
				t.Errorf("ParseLine(%q): got err %v, want ErrBadResultLine", line, err)
			}
		})
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	outcomes := []Outcome{
		Blocked(syscall.EPERM),
		Blocked(syscall.EACCES),
		Allowed(),
		ProbeError(0),
		ProbeError(syscall.ENOMEM),
	}

	for _, o := range outcomes {
		got, err := ParseLine(o.Line())
		if err != nil {
			t.Fatalf("ParseLine(%q): unexpected error: %v", o.Line(), err)
		}
		if got != o {
			t.Errorf("round trip of %+v: got %+v", o, got)
		}
	}
}

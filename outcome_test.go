package sandboxprobe

import (
	"syscall"
	"testing"
)

func TestVerdictString(t *testing.T) {
	tests := []struct {
		v    Verdict
		want string
	}{
		{VerdictBlocked, "blocked"},
		{VerdictAllowed, "allowed"},
		{VerdictProbeError, "probe-error"},
		{Verdict(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("Verdict.String(): got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutcomeConstructors(t *testing.T) {
	if o := Blocked(syscall.EPERM); o.Verdict != VerdictBlocked || o.Errno != syscall.EPERM {
		t.Errorf("Blocked(EPERM): got %+v", o)
	}
	if o := Allowed(); o.Verdict != VerdictAllowed || o.Errno != 0 {
		t.Errorf("Allowed(): got %+v", o)
	}
	if o := ProbeError(syscall.ENOMEM); o.Verdict != VerdictProbeError || o.Errno != syscall.ENOMEM {
		t.Errorf("ProbeError(ENOMEM): got %+v", o)
	}
}

func TestOutcomeLine(t *testing.T) {
	tests := []struct {
		name string
		o    Outcome
		want string
	}{
		{"blocked-eperm", Blocked(syscall.EPERM), "FORBIDDEN_BLOCKED: 1"},
		{"blocked-eacces", Blocked(syscall.EACCES), "FORBIDDEN_BLOCKED: 13"},
		{"allowed", Allowed(), "FORBIDDEN_ALLOWED"},
		{"probe-error", ProbeError(syscall.ENOMEM), "PROBE_ERROR: 12"},
		{"probe-error-no-errno", ProbeError(0), "PROBE_ERROR: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.Line(); got != tt.want {
				t.Errorf("Line(): got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutcomeExitCode(t *testing.T) {
	tests := []struct {
		name string
		o    Outcome
		want int
	}{
		{"blocked", Blocked(syscall.EPERM), ExitOK},
		{"allowed", Allowed(), ExitOK},
		{"probe-error", ProbeError(syscall.ENOMEM), ExitProbeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.ExitCode(); got != tt.want {
				t.Errorf("ExitCode(): got %d, want %d", got, tt.want)
			}
		})
	}

	if ExitOK != 0 {
		t.Errorf("ExitOK: got %d, want 0", ExitOK)
	}
	if ExitProbeError == 0 {
		t.Error("ExitProbeError: got 0, want nonzero")
	}
}

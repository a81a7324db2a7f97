package sandboxprobe

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a single Run or Main call. Options exist for embedding
// and testing; probe binaries built from this package take no flags and no
// configuration, and the defaults keep stdout carrying nothing but the
// result line.
type Option func(*runOptions)

// runOptions holds per-call configuration applied via Option functions.
type runOptions struct {
	stdout io.Writer
	logger *slog.Logger
}

// applyOptions resolves the option list against the defaults.
func applyOptions(opts []Option) runOptions {
	ro := runOptions{
		stdout: os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&ro)
	}
	return ro
}

// WithStdout overrides the writer that receives the result line.
// Tests use this to capture output without touching process stdout.
func WithStdout(w io.Writer) Option {
	return func(ro *runOptions) {
		ro.stdout = w
	}
}

// WithLogger enables debug logging for the call. The default logger
// discards everything: a probe run directly must produce no diagnostics
// beyond the result line. Loggers must not write to stdout.
func WithLogger(l *slog.Logger) Option {
	return func(ro *runOptions) {
		if l != nil {
			ro.logger = l
		}
	}
}

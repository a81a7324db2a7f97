// Package ops provides the restricted operations shipped as probe binaries.
//
// Each constructor returns a sandboxprobe.Operation attempting one action
// that a restrictive sandbox is expected to deny: raw socket creation, Unix
// domain sockets, raw ICMP listeners, device-node creation, and mounting.
// One probe binary wraps each operation (see cmd/); the operation under
// test is fixed at build time.
//
// On platforms where an operation cannot be attempted, its Attempt fails
// with sandboxprobe.ErrUnsupportedPlatform, which classifies as a probe
// error rather than a policy verdict.
package ops

import "github.com/zhangyunhao116/sandboxprobe"

// unsupported returns an Operation whose attempt always reports the
// platform as unsupported.
func unsupported(name string) sandboxprobe.Operation {
	return sandboxprobe.Operation{
		Name: name,
		Attempt: func() (func() error, error) {
			return nil, sandboxprobe.ErrUnsupportedPlatform
		},
	}
}

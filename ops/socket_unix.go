//go:build unix

package ops

import (
	"golang.org/x/sys/unix"

	"github.com/zhangyunhao116/sandboxprobe"
)

// RawSocket probes creation of a raw IPv4 socket. Raw sockets require
// CAP_NET_RAW and are denied by container default seccomp profiles, so a
// correctly restricted sandbox answers with EPERM. Outside a sandbox, a
// privileged user gets FORBIDDEN_ALLOWED: the probe only carries meaning
// in the restricted context the orchestrator sets up.
//
// The socket uses IPPROTO_ICMP rather than protocol 0: raw sockets with an
// unspecified protocol are rejected by the kernel even for root, which
// would make the unrestricted success path unobservable.
func RawSocket() sandboxprobe.Operation {
	return socketOp("raw-socket", unix.AF_INET, unix.SOCK_RAW, unix.IPPROTO_ICMP)
}

// UnixSocket probes creation of an AF_UNIX stream socket. Sandboxes that
// cut the host IPC surface deny this at the socket(2) level.
func UnixSocket() sandboxprobe.Operation {
	return socketOp("unix-socket", unix.AF_UNIX, unix.SOCK_STREAM, 0)
}

// socketOp builds an Operation attempting socket(domain, typ, proto) once,
// closing the descriptor on the success path.
func socketOp(name string, domain, typ, proto int) sandboxprobe.Operation {
	return sandboxprobe.Operation{
		Name: name,
		Attempt: func() (func() error, error) {
			fd, err := unix.Socket(domain, typ, proto)
			if err != nil {
				return nil, err
			}
			return func() error { return unix.Close(fd) }, nil
		},
	}
}

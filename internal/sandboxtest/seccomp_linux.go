//go:build linux

package sandboxtest

import (
	"fmt"

	"github.com/elastic/go-seccomp-bpf"
	"golang.org/x/sys/unix"
)

// DenyWithEPerm loads a seccomp filter that fails the named syscalls with
// EPERM and allows everything else, mimicking how container runtimes answer
// denied operations. The filter applies to all threads and stays in place
// for the lifetime of the process; callers are expected to be short-lived
// probe children, not test processes.
func DenyWithEPerm(syscalls ...string) error {
	filter := seccomp.Filter{
		NoNewPrivs: true,
		Flag:       seccomp.FilterFlagTSync,
		Policy: seccomp.Policy{
			DefaultAction: seccomp.ActionAllow,
			Syscalls: []seccomp.SyscallGroup{{
				Action: actionErrno(uint32(unix.EPERM)),
				Names:  syscalls,
			}},
		},
	}
	if err := seccomp.LoadFilter(filter); err != nil {
		return fmt.Errorf("sandboxtest: load seccomp filter: %w", err)
	}
	return nil
}

// actionErrno builds a seccomp return action carrying an errno payload in
// its low 16 bits.
func actionErrno(errno uint32) seccomp.Action {
	return seccomp.Action(uint32(seccomp.ActionErrno) | errno&0xffff)
}

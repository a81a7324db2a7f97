//go:build linux

package ops

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/zhangyunhao116/sandboxprobe"
)

// Mknod probes creation of a character device node (the null device, 1:3)
// under TempDir. Sandboxes deny mknod to keep workloads from fabricating
// device access; containers drop CAP_MKNOD and seccomp profiles commonly
// deny the syscall outright. An allowed node is unlinked before exit.
func Mknod() sandboxprobe.Operation {
	return sandboxprobe.Operation{
		Name: "mknod",
		Attempt: func() (func() error, error) {
			path := filepath.Join(os.TempDir(), fmt.Sprintf("sandboxprobe-mknod-%d", os.Getpid()))
			// A leftover node from a killed prior run would turn EEXIST into
			// a spurious probe error; the unlink keeps repeat runs identical.
			_ = unix.Unlink(path)
			if err := unix.Mknod(path, unix.S_IFCHR|0o600, int(unix.Mkdev(1, 3))); err != nil {
				return nil, err
			}
			return func() error { return unix.Unlink(path) }, nil
		},
	}
}

// Mount probes mounting a tmpfs onto a freshly created temp directory.
// mount(2) requires CAP_SYS_ADMIN and is denied in any serious sandbox.
// The temp directory is a probe precondition: failure to create it is a
// setup error, not a verdict about the mount restriction. An allowed
// mount is unmounted and its target removed before exit.
func Mount() sandboxprobe.Operation {
	return sandboxprobe.Operation{
		Name: "mount",
		Attempt: func() (func() error, error) {
			target, err := os.MkdirTemp("", "sandboxprobe-mount-")
			if err != nil {
				return nil, &sandboxprobe.SetupError{Op: "create mount target", Err: err}
			}
			if err := unix.Mount("sandboxprobe", target, "tmpfs", 0, "size=4k"); err != nil {
				_ = os.Remove(target)
				return nil, err
			}
			return func() error {
				if err := unix.Unmount(target, 0); err != nil {
					return err
				}
				return os.Remove(target)
			}, nil
		},
	}
}

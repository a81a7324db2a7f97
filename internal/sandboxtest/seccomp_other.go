//go:build !linux

package sandboxtest

import "github.com/zhangyunhao116/sandboxprobe"

// DenyWithEPerm requires Linux seccomp; on other platforms it reports the
// platform as unsupported.
func DenyWithEPerm(syscalls ...string) error {
	return sandboxprobe.ErrUnsupportedPlatform
}

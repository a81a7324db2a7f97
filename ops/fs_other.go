//go:build !linux

package ops

import "github.com/zhangyunhao116/sandboxprobe"

func Mknod() sandboxprobe.Operation {
	return unsupported("mknod")
}

func Mount() sandboxprobe.Operation {
	return unsupported("mount")
}

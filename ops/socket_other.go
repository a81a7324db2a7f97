//go:build !unix

package ops

import "github.com/zhangyunhao116/sandboxprobe"

func RawSocket() sandboxprobe.Operation {
	return unsupported("raw-socket")
}

func UnixSocket() sandboxprobe.Operation {
	return unsupported("unix-socket")
}

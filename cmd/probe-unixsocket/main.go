// Command probe-unixsocket attempts to create an AF_UNIX stream socket and
// reports whether the sandbox under test denied it.
package main

import (
	"os"

	"github.com/zhangyunhao116/sandboxprobe"
	"github.com/zhangyunhao116/sandboxprobe/ops"
)

func main() {
	os.Exit(sandboxprobe.Main(ops.UnixSocket()))
}

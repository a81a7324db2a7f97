// Command probe-mknod attempts to create a character device node and
// reports whether the sandbox under test denied it. An allowed node is
// unlinked before exit.
package main

import (
	"os"

	"github.com/zhangyunhao116/sandboxprobe"
	"github.com/zhangyunhao116/sandboxprobe/ops"
)

func main() {
	os.Exit(sandboxprobe.Main(ops.Mknod()))
}

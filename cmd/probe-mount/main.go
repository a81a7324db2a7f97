// Command probe-mount attempts to mount a tmpfs onto a temporary directory
// and reports whether the sandbox under test denied it. An allowed mount is
// unmounted and its target removed before exit.
package main

import (
	"os"

	"github.com/zhangyunhao116/sandboxprobe"
	"github.com/zhangyunhao116/sandboxprobe/ops"
)

func main() {
	os.Exit(sandboxprobe.Main(ops.Mount()))
}

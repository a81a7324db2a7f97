// Command probe-icmplisten attempts to open a raw ICMP listener through
// the platform networking layer and reports whether the sandbox under test
// denied it.
package main

import (
	"os"

	"github.com/zhangyunhao116/sandboxprobe"
	"github.com/zhangyunhao116/sandboxprobe/ops"
)

func main() {
	os.Exit(sandboxprobe.Main(ops.ICMPListen()))
}

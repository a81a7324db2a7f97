// Command probe-rawsocket attempts to create a raw IPv4 socket, an
// operation a restrictive sandbox is expected to deny.
//
// It takes no flags and no configuration, prints exactly one result line
// on stdout, and exits 0 unless the probe itself malfunctioned:
//
//	FORBIDDEN_BLOCKED: <errno>   the sandbox denied the socket
//	FORBIDDEN_ALLOWED            the socket was created (policy gap)
//	PROBE_ERROR: <errno>         the probe could not measure anything
package main

import (
	"os"

	"github.com/zhangyunhao116/sandboxprobe"
	"github.com/zhangyunhao116/sandboxprobe/ops"
)

func main() {
	os.Exit(sandboxprobe.Main(ops.RawSocket()))
}

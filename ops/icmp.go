package ops

import (
	"golang.org/x/net/icmp"

	"github.com/zhangyunhao116/sandboxprobe"
)

// ICMPListen probes opening a raw ICMP listener through the net stack.
// It exercises the same CAP_NET_RAW restriction as RawSocket but via the
// higher-level socket path an application would actually use, so the two
// probes together distinguish "syscall denied" from "denied somewhere in
// the platform networking layer".
func ICMPListen() sandboxprobe.Operation {
	return sandboxprobe.Operation{
		Name: "icmp-listen",
		Attempt: func() (func() error, error) {
			c, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
			if err != nil {
				return nil, err
			}
			return c.Close, nil
		},
	}
}

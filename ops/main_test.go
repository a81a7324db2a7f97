package ops

import (
	"testing"

	"github.com/zhangyunhao116/sandboxprobe"
	"github.com/zhangyunhao116/sandboxprobe/internal/sandboxtest"
)

// probeRegistry names every shipped operation for the re-exec harness.
// The keys double as the child-side probe names used by RunProbe.
func probeRegistry() map[string]sandboxprobe.Operation {
	return map[string]sandboxprobe.Operation{
		"raw-socket":  RawSocket(),
		"unix-socket": UnixSocket(),
		"icmp-listen": ICMPListen(),
		"mknod":       Mknod(),
		"mount":       Mount(),
	}
}

func TestMain(m *testing.M) {
	sandboxtest.Main(m, probeRegistry())
}

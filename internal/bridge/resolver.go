package bridge

import (
	"strings"

	"github.com/mesoslab/beatbridge/internal/mesos"
)

// OutputHostVar is the executor environment variable users set on their
// tasks to enable shipping. It is looked up inside the executor descriptor,
// not in this process's own environment.
const OutputHostVar = "FILEBEAT_OUTPUT_HOST"

// Mode is the resolved routing for the input stream.
type Mode int

const (
	// ModeShip runs filebeat against a configured elasticsearch host.
	ModeShip Mode = iota
	// ModeSidecar appends input lines to a per-stream file in the sandbox.
	ModeSidecar
	// ModePassthrough echoes input lines to stdout.
	ModePassthrough
)

func (m Mode) String() string {
	switch m {
	case ModeShip:
		return "ship"
	case ModeSidecar:
		return "sidecar"
	case ModePassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// Target is the routing decision plus its mode-specific parameter. Resolved
// exactly once per run.
type Target struct {
	Mode Mode
	Host string // ModeShip only
	Path string // ModeSidecar only
}

// Resolve picks the output mode. Fallback priority: explicit shipping
// configuration, then a per-stream sidecar file in the sandbox, then plain
// passthrough.
func Resolve(info mesos.ExecutorInfo, sctx mesos.StreamContext) Target {
	if host, ok := info.EnvValue(OutputHostVar); ok {
		return Target{Mode: ModeShip, Host: host}
	}
	if sctx.SandboxDir != "" && sctx.Stream != "" {
		return Target{
			Mode: ModeSidecar,
			Path: sctx.SandboxDir + "/" + strings.ToLower(sctx.Stream),
		}
	}
	return Target{Mode: ModePassthrough}
}

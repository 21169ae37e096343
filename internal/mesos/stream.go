package mesos

// StreamContext identifies which output stream of which task sandbox this
// process is responsible for. Built once at startup from the environment and
// immutable after that. Values are taken verbatim; consumers that need a
// lower-cased stream label do that themselves.
type StreamContext struct {
	SandboxDir string
	Stream     string
}

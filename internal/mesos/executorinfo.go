// Package mesos decodes the executor metadata the Mesos agent hands to a
// container logger module through the environment.
package mesos

import "encoding/json"

// ExecutorInfo mirrors the subset of the Mesos ExecutorInfo protobuf JSON
// that the bridge consumes. Every level is optional: a task scheduled
// without a docker image, without environment variables, or without the
// descriptor at all is a normal operating mode, so all lookups collapse to
// zero values instead of errors.
type ExecutorInfo struct {
	Command     CommandInfo   `json:"command"`
	Container   ContainerInfo `json:"container"`
	FrameworkID FrameworkID   `json:"framework_id"`
}

type CommandInfo struct {
	Environment Environment `json:"environment"`
}

type Environment struct {
	Variables []Variable `json:"variables"`
}

type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ContainerInfo struct {
	Docker DockerInfo `json:"docker"`
}

type DockerInfo struct {
	Image string `json:"image"`
}

type FrameworkID struct {
	Value string `json:"value"`
}

// ParseExecutorInfo decodes the raw MESOS_EXECUTORINFO_JSON value. Absent or
// malformed input yields an empty descriptor; that is not an error.
func ParseExecutorInfo(raw string) ExecutorInfo {
	var info ExecutorInfo
	if raw == "" {
		return ExecutorInfo{}
	}
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return ExecutorInfo{}
	}
	return info
}

// EnvValue returns the value of the first executor environment variable with
// the given name. Any missing nesting level reports not-found.
func (e ExecutorInfo) EnvValue(name string) (string, bool) {
	for _, v := range e.Command.Environment.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Image returns the docker image reference, or "" when the task has none.
func (e ExecutorInfo) Image() string {
	return e.Container.Docker.Image
}

// Framework returns the framework identifier, or "" when absent.
func (e ExecutorInfo) Framework() string {
	return e.FrameworkID.Value
}

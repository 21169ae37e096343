package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultFilebeatBin is where the Mesos agent image installs filebeat.
const DefaultFilebeatBin = "/usr/bin/filebeat"

// Settings holds everything the bridge reads from its environment. The Mesos
// agent sets the MESOS_* variables when it launches a container logger; all
// of them may legitimately be absent (e.g. dry runs outside an agent).
type Settings struct {
	// ExecutorInfo is the raw JSON executor descriptor from
	// MESOS_EXECUTORINFO_JSON. Kept undecoded here; the mesos package
	// owns the tolerant decode.
	ExecutorInfo string `mapstructure:"executor_info"`

	// SandboxDir is the task sandbox path from MESOS_LOG_SANDBOX_DIRECTORY.
	SandboxDir string `mapstructure:"sandbox_dir"`

	// Stream is the log stream label from MESOS_LOG_STREAM,
	// conventionally STDOUT or STDERR.
	Stream string `mapstructure:"stream"`

	// FilebeatBin is the shipping agent binary, overridable via FILEBEAT_BIN.
	FilebeatBin string `mapstructure:"filebeat_bin"`
}

var envBindings = map[string]string{
	"executor_info": "MESOS_EXECUTORINFO_JSON",
	"sandbox_dir":   "MESOS_LOG_SANDBOX_DIRECTORY",
	"stream":        "MESOS_LOG_STREAM",
	"filebeat_bin":  "FILEBEAT_BIN",
}

// Load reads the process environment into a Settings struct. Missing
// variables resolve to empty strings; only the filebeat binary path has a
// default.
func Load() (*Settings, error) {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}
	v.SetDefault("filebeat_bin", DefaultFilebeatBin)

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return &settings, nil
}

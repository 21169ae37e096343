// Package filebeat renders and provisions the configuration artifacts the
// shipping agent needs inside a task sandbox.
package filebeat

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/mesoslab/beatbridge/internal/mesos"
)

// Fixed agent configuration: one stdin prospector closed at EOF, four task
// metadata fields on every record, one elasticsearch output.
const configTemplate = `
filebeat:
  prospectors:
    -
      paths:
        - "-"
      input_type: stdin
      close_eof: true
      fields:
        image: {{.Image}}
        framework_id: {{.FrameworkID}}
        mesos_log_sandbox_directory: {{.SandboxDir}}
        mesos_log_stream: {{.Stream}}

output:
  elasticsearch:
    hosts: ["{{.Host}}"]
`

var configTmpl = template.Must(template.New("filebeat").Parse(configTemplate))

type configData struct {
	Image       string
	FrameworkID string
	SandboxDir  string
	Stream      string
	Host        string
}

// RenderConfig substitutes task metadata and the shipping endpoint into the
// agent configuration template.
func RenderConfig(info mesos.ExecutorInfo, sctx mesos.StreamContext, host string) (string, error) {
	var buf bytes.Buffer
	err := configTmpl.Execute(&buf, configData{
		Image:       info.Image(),
		FrameworkID: info.Framework(),
		SandboxDir:  sctx.SandboxDir,
		Stream:      sctx.Stream,
		Host:        host,
	})
	if err != nil {
		return "", fmt.Errorf("rendering filebeat config: %w", err)
	}
	return buf.String(), nil
}

// ConfigPath is where the rendered configuration lives in the sandbox. The
// stream label keeps its original case here, unlike the sidecar file path;
// downstream tooling expects e.g. filebeat-STDOUT.yml.
func ConfigPath(sctx mesos.StreamContext) string {
	return fmt.Sprintf("%s/filebeat-%s.yml", sctx.SandboxDir, sctx.Stream)
}

// WriteConfig persists the rendered configuration, replacing any previous
// run's file so the config always reflects current task metadata.
func WriteConfig(path, body string) error {
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing filebeat config %s: %w", path, err)
	}
	return nil
}

package filebeat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// The two Elasticsearch index-template variants shipped with the bridge,
// one per mapping-schema generation. Users can pre-place their own files in
// the sandbox to override the defaults; provisioning never overwrites.
const (
	TemplateFileName     = "filebeat.template.json"
	TemplateES2xFileName = "filebeat.template-es2x.json"
)

var indexTemplates = []struct {
	name string
	body string
}{
	{TemplateFileName, indexTemplate},
	{TemplateES2xFileName, indexTemplateES2x},
}

// ProvisionTemplates writes the default index templates into the sandbox
// unless files of the same name already exist. With no sandbox directory it
// is a no-op. A failed write is returned as-is: a missing template silently
// degrades index quality downstream, so the caller treats it as fatal.
func ProvisionTemplates(log zerolog.Logger, sandboxDir string) error {
	if sandboxDir == "" {
		return nil
	}
	for _, tmpl := range indexTemplates {
		path := filepath.Join(sandboxDir, tmpl.name)
		if _, err := os.Stat(path); err == nil {
			log.Debug().Str("path", path).Msg("Index template already present, keeping it")
			continue
		}
		if err := os.WriteFile(path, []byte(tmpl.body), 0o644); err != nil {
			return fmt.Errorf("writing index template %s: %w", tmpl.name, err)
		}
		log.Info().Str("path", path).Msg("Wrote default index template")
	}
	return nil
}

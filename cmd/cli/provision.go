package cli

import (
	"github.com/mesoslab/beatbridge/internal/config"
	"github.com/mesoslab/beatbridge/internal/filebeat"
	"github.com/mesoslab/beatbridge/pkg/logger"
)

// RunProvision writes the default index templates into the sandbox without
// touching the input stream.
func RunProvision() {
	log := logger.Get()

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	if settings.SandboxDir == "" {
		log.Warn().Msg("No sandbox directory set, nothing to provision")
		return
	}
	if err := filebeat.ProvisionTemplates(log, settings.SandboxDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision index templates")
	}
}

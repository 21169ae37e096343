package cli

import (
	"fmt"

	"github.com/mesoslab/beatbridge/internal/bridge"
	"github.com/mesoslab/beatbridge/internal/config"
	"github.com/mesoslab/beatbridge/internal/filebeat"
	"github.com/mesoslab/beatbridge/internal/mesos"
	"github.com/mesoslab/beatbridge/pkg/logger"
)

// RunRender resolves the output mode from the current environment and, in
// ship mode, prints the filebeat config that a real run would write. Nothing
// touches the sandbox and nothing is spawned.
func RunRender() {
	log := logger.Get()

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}

	info := mesos.ParseExecutorInfo(settings.ExecutorInfo)
	sctx := mesos.StreamContext{SandboxDir: settings.SandboxDir, Stream: settings.Stream}

	target := bridge.Resolve(info, sctx)
	if target.Mode != bridge.ModeShip {
		log.Info().Stringer("mode", target.Mode).Msg("No shipping host configured, nothing to render")
		return
	}

	body, err := filebeat.RenderConfig(info, sctx, target.Host)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render filebeat config")
	}
	log.Info().Str("path", filebeat.ConfigPath(sctx)).Msg("Config a bridge run would write")
	fmt.Print(body)
}

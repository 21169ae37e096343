package cli

import (
	"context"
	"os"

	"github.com/mesoslab/beatbridge/internal/bridge"
	"github.com/mesoslab/beatbridge/internal/config"
	"github.com/mesoslab/beatbridge/pkg/logger"
)

// RunBridge executes one full bridge run and exits the process with the
// resolved status: 0 for completed copy modes, the filebeat child's exit
// code in ship mode, 1 for setup failures.
func RunBridge() {
	log := logger.Get()

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}

	code, err := bridge.New(log, settings).Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Bridge run failed")
	}
	if code != 0 {
		os.Exit(code)
	}
}

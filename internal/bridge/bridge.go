// Package bridge drives one run of the container logger: extract the task
// context, provision index templates, resolve the output mode, and either
// supervise a filebeat child or copy the stream itself.
package bridge

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/mesoslab/beatbridge/internal/config"
	"github.com/mesoslab/beatbridge/internal/filebeat"
	"github.com/mesoslab/beatbridge/internal/mesos"
	"github.com/mesoslab/beatbridge/internal/supervisor"
)

type superviseFunc func(ctx context.Context, log zerolog.Logger, argv []string, stdin io.Reader) (int, error)

// Bridge is a single run's state, built once from settings and immutable
// while running.
type Bridge struct {
	// In and Out default to the process streams; tests swap them.
	In  io.Reader
	Out io.Writer

	log       zerolog.Logger
	bin       string
	info      mesos.ExecutorInfo
	sctx      mesos.StreamContext
	supervise superviseFunc
}

func New(log zerolog.Logger, settings *config.Settings) *Bridge {
	return &Bridge{
		In:   os.Stdin,
		Out:  os.Stdout,
		log:  log,
		bin:  settings.FilebeatBin,
		info: mesos.ParseExecutorInfo(settings.ExecutorInfo),
		sctx: mesos.StreamContext{
			SandboxDir: settings.SandboxDir,
			Stream:     settings.Stream,
		},
		supervise: supervisor.Supervise,
	}
}

// Run executes the bridge and returns the process exit code. A non-nil error
// always comes with a non-zero code; in ship mode a nil error still carries
// the child's own exit code.
func (b *Bridge) Run(ctx context.Context) (int, error) {
	// Templates are provisioned regardless of the resolved mode; log
	// consumers need them in place before shipping is ever enabled.
	if err := filebeat.ProvisionTemplates(b.log, b.sctx.SandboxDir); err != nil {
		return 1, err
	}

	target := Resolve(b.info, b.sctx)
	switch target.Mode {
	case ModeShip:
		return b.ship(ctx, target.Host)
	case ModeSidecar:
		b.log.Info().Str("path", target.Path).Msg("No shipping host configured, appending to sidecar file")
		if err := copyToFile(b.In, target.Path); err != nil {
			return 1, err
		}
		return 0, nil
	default:
		b.log.Debug().Msg("No shipping host or sandbox known, passing input through")
		if err := copyToWriter(b.In, b.Out); err != nil {
			return 1, err
		}
		return 0, nil
	}
}

func (b *Bridge) ship(ctx context.Context, host string) (int, error) {
	body, err := filebeat.RenderConfig(b.info, b.sctx, host)
	if err != nil {
		return 1, err
	}
	configPath := filebeat.ConfigPath(b.sctx)
	if err := filebeat.WriteConfig(configPath, body); err != nil {
		return 1, err
	}
	b.log.Info().
		Str("host", host).
		Str("config", configPath).
		Str("stream", b.sctx.Stream).
		Msg("Shipping stream via filebeat")

	argv := []string{b.bin, "-path.config", b.sctx.SandboxDir, "-c", configPath}
	code, err := b.supervise(ctx, b.log, argv, b.In)
	if err != nil {
		return 1, err
	}
	return code, nil
}

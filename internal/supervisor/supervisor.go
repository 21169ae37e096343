// Package supervisor owns the lifecycle of the spawned shipping agent:
// start it bound to our stdin, forward a termination request as a kill, and
// report its exit status verbatim.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// Supervise runs argv as a child process with stdin as its input stream and
// blocks until it exits. Once the child exists, a SIGTERM to this process is
// forwarded as an immediate kill of the child; the supervisor itself keeps
// waiting and exits through the normal Wait path. The returned code is the
// child's own exit status (128+signal when it died to a signal). There is no
// retry and no timeout; shutdown is entirely signal driven.
func Supervise(ctx context.Context, log zerolog.Logger, argv []string, stdin io.Reader) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting %s: %w", argv[0], err)
	}
	log.Info().Str("bin", argv[0]).Int("pid", cmd.Process.Pid).Msg("Shipping agent started")

	// The handler is armed only after the child exists, so a signal can
	// never arrive with nothing to kill. The child handle is the only
	// state shared with the main flow.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("Termination requested, killing shipping agent")
			if err := cmd.Process.Kill(); err != nil {
				log.Warn().Err(err).Msg("Kill failed")
			}
		case <-ctx.Done():
			if err := cmd.Process.Kill(); err != nil {
				log.Warn().Err(err).Msg("Kill failed")
			}
		case <-done:
		}
	}()

	waitErr := cmd.Wait()
	close(done)
	signal.Stop(sigCh)

	return exitCode(waitErr)
}

// exitCode translates Wait's error into the child's exit status. A child
// killed by a signal reports 128+signal, the shell convention.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("waiting for shipping agent: %w", err)
}

package supervisor_test

import (
	"context"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesoslab/beatbridge/internal/supervisor"
)

func TestSuperviseExitCode(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want int
	}{
		{name: "clean exit", argv: []string{"/bin/sh", "-c", "exit 0"}, want: 0},
		{name: "non-zero exit propagates verbatim", argv: []string{"/bin/sh", "-c", "exit 3"}, want: 3},
		{name: "high exit code", argv: []string{"/bin/sh", "-c", "exit 42"}, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := supervisor.Supervise(context.Background(), zerolog.Nop(), tt.argv, strings.NewReader(""))
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestSuperviseReadsStdin(t *testing.T) {
	code, err := supervisor.Supervise(context.Background(), zerolog.Nop(),
		[]string{"/bin/sh", "-c", "read line && test \"$line\" = hello"},
		strings.NewReader("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestSuperviseSpawnFailure(t *testing.T) {
	_, err := supervisor.Supervise(context.Background(), zerolog.Nop(),
		[]string{"/nonexistent/binary"}, strings.NewReader(""))
	assert.Error(t, err)
}

func TestSuperviseEmptyCommand(t *testing.T) {
	_, err := supervisor.Supervise(context.Background(), zerolog.Nop(), nil, strings.NewReader(""))
	assert.Error(t, err)
}

func TestSuperviseTerminationSignalKillsChild(t *testing.T) {
	done := make(chan struct{})
	var code int
	var err error
	go func() {
		defer close(done)
		code, err = supervisor.Supervise(context.Background(), zerolog.Nop(),
			[]string{"/bin/sh", "-c", "sleep 30"}, strings.NewReader(""))
	}()

	// Give the supervisor time to spawn the child and arm the handler,
	// then ask ourselves to terminate the way the orchestrator would.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not return after termination signal")
	}

	require.NoError(t, err)
	assert.Equal(t, 128+int(syscall.SIGKILL), code, "child is killed, not asked to exit")
}

func TestSuperviseContextCancelKillsChild(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var code int
	var err error
	go func() {
		defer close(done)
		code, err = supervisor.Supervise(ctx, zerolog.Nop(),
			[]string{"/bin/sh", "-c", "sleep 30"}, strings.NewReader(""))
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not return after context cancel")
	}

	require.NoError(t, err)
	assert.Equal(t, 128+int(syscall.SIGKILL), code)
}

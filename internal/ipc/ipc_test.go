package ipc

import (
	"context"
	"errors"
	"testing"
	"time"

	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"
	"stopwatch/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startInstance(t *testing.T) (*Client, *clock.Manual) {
	t.Helper()

	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := service.New(nil, service.Options{Clock: manual})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = svc.Run(ctx)
	}()

	guard, err := Listen("127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(svc)
	go func() {
		_ = server.Serve(guard.Listener())
	}()

	t.Cleanup(func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		_ = server.Shutdown(shutdownCtx)
		_ = guard.Release()
		cancel()
		<-svc.Done()
	})

	return NewClient(guard.Address()), manual
}

func TestClientServer_RoundTrip(t *testing.T) {
	t.Parallel()
	client, manual := startInstance(t)
	ctx := context.Background()

	snapshot, err := client.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, stopwatch.StatusIdle, snapshot.Status)

	snapshot, err = client.Send(ctx, command.ForCommand(command.Start))
	require.NoError(t, err)
	assert.Equal(t, stopwatch.StatusStarted, snapshot.Status)

	manual.Advance(2 * time.Second)

	snapshot, err = client.Send(ctx, command.ForAction(command.Stop))
	require.NoError(t, err)
	assert.Equal(t, stopwatch.StatusStopped, snapshot.Status)
	assert.Equal(t, "00:00:02", snapshot.Time.String())
	assert.Equal(t, 2*time.Second, snapshot.Elapsed)
}

func TestClientServer_BothChannelsApplyOnce(t *testing.T) {
	t.Parallel()
	client, _ := startInstance(t)

	snapshot, err := client.Send(context.Background(), command.Request{
		State:  stopwatch.StatusStarted.String(),
		Action: command.ActionCancel,
	})
	require.NoError(t, err)
	assert.Equal(t, stopwatch.StatusStarted, snapshot.Status)
}

func TestServer_StoppedService(t *testing.T) {
	t.Parallel()

	svc := service.New(nil, service.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = svc.Run(ctx)
	}()
	cancel()
	<-svc.Done()

	guard, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	server := NewServer(svc)
	go func() {
		_ = server.Serve(guard.Listener())
	}()
	defer func() {
		_ = server.Shutdown(context.Background())
	}()

	_, err = NewClient(guard.Address()).State(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGuard_SecondListenFails(t *testing.T) {
	t.Parallel()

	first, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = first.Release()
	}()

	_, err = Listen(first.Address())
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())
}

func TestAddress_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Address("Stopwatch"), Address("Stopwatch"))
	assert.NotEqual(t, Address("Stopwatch"), Address("Stopwatch-dev"))

	port := portFromName("Stopwatch")
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)

	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	assert.Nil(t, guard.Listener())
}

func TestClient_NoInstance(t *testing.T) {
	t.Parallel()

	guard, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	address := guard.Address()
	require.NoError(t, guard.Release())

	_, err = NewClient(address).State(context.Background())
	assert.Error(t, err)
}

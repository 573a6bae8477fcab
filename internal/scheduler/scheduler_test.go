package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEveryRunsImmediatelyAndRepeats(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	done := make(chan struct{})

	go func() {
		defer close(done)
		Every(ctx, nil, 5*time.Millisecond, "count", func(context.Context) error {
			if runs.Add(1) == 3 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Every did not return after cancel")
	}
	require.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestEveryLogsErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := context.WithCancel(context.Background())

	Every(ctx, zap.New(core), time.Hour, "poll", func(context.Context) error {
		cancel()
		return errors.New("boom")
	})

	// the run canceled its own context, so the error is not worth a warning
	require.Equal(t, 0, logs.Len())

	ctx2, cancel2 := context.WithCancel(context.Background())
	var once atomic.Bool
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel2()
	}()
	Every(ctx2, zap.New(core), time.Hour, "poll", func(context.Context) error {
		if once.CompareAndSwap(false, true) {
			return errors.New("boom")
		}
		return nil
	})

	entries := logs.FilterMessage("scheduled task failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "poll", entries[0].ContextMap()["task"])
}

package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_RunsOnInterval(t *testing.T) {
	var runs atomic.Int32
	task := New("tick", 10*time.Millisecond, func(ctx context.Context) { runs.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go task.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestTask_ImmediateRun(t *testing.T) {
	var runs atomic.Int32
	task := New("now", time.Hour, func(ctx context.Context) { runs.Add(1) })
	task.Immediate = func() bool { return true }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go task.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestTask_NoImmediateRunWhenNotNeeded(t *testing.T) {
	var runs atomic.Int32
	task := New("later", time.Hour, func(ctx context.Context) { runs.Add(1) })
	task.Immediate = func() bool { return false }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go task.Start(ctx)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestTask_Trigger(t *testing.T) {
	var runs atomic.Int32
	task := New("kick", time.Hour, func(ctx context.Context) { runs.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go task.Start(ctx)

	task.Trigger()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestTask_TriggerNeverBlocks(t *testing.T) {
	task := New("idle", time.Hour, func(ctx context.Context) {})

	done := make(chan struct{})
	go func() {
		for range 10 {
			task.Trigger()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Trigger blocked without a running loop")
	}
}

func TestRun_StopsAllTasksOnCancel(t *testing.T) {
	var a, b atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx,
			New("a", 5*time.Millisecond, func(ctx context.Context) { a.Add(1) }),
			New("b", 5*time.Millisecond, func(ctx context.Context) { b.Add(1) }),
		)
		close(done)
	}()

	assert.Eventually(t, func() bool { return a.Load() > 0 && b.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

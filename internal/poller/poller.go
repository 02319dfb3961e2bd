package poller

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Task runs a job on a fixed interval. Attempts never back off: a failed run
// is simply followed by the next tick. Runs of one task never overlap.
type Task struct {
	Name     string
	Interval time.Duration
	Job      func(ctx context.Context)
	// Immediate, when set, is consulted once at start; a true result runs the
	// job before the first tick.
	Immediate func() bool

	trigger chan struct{}
}

// New creates a task.
func New(name string, interval time.Duration, job func(ctx context.Context)) *Task {
	return &Task{
		Name:     name,
		Interval: interval,
		Job:      job,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests an out-of-schedule run. Requests made while one is already
// pending collapse into it. It never blocks.
func (t *Task) Trigger() {
	select {
	case t.trigger <- struct{}{}:
	default:
	}
}

// Start runs the task loop until ctx is cancelled.
func (t *Task) Start(ctx context.Context) {
	log.Info("Starting poller", "task", t.Name, "interval", t.Interval)
	if t.Immediate != nil && t.Immediate() {
		t.run(ctx, "startup")
	}

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping poller", "task", t.Name)
			return
		case <-ticker.C:
			t.run(ctx, "interval")
		case <-t.trigger:
			t.run(ctx, "trigger")
		}
	}
}

func (t *Task) run(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	t.Job(ctx)
	log.Debug("Poll finished", "task", t.Name, "reason", reason, "duration_ms", time.Since(start).Milliseconds())
}

// Run starts every task and blocks until ctx is cancelled and all loops have
// returned.
func Run(ctx context.Context, tasks ...*Task) {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error {
			task.Start(gctx)
			return nil
		})
	}
	_ = g.Wait()
}

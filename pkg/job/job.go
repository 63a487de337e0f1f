package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/metrics"
)

type Func func(ctx context.Context) error

type task struct {
	name  string
	every time.Duration
	run   Func
}

// Scheduler runs periodic maintenance tasks, each in its own goroutine.
type Scheduler struct {
	tasks []task
	wg    sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run at start and then once per interval. A non-positive interval disables the task.
func (s *Scheduler) Every(name string, interval time.Duration, fn Func) *Scheduler {
	if interval <= 0 {
		slog.Warn("job disabled", "job", name)
		return s
	}

	s.tasks = append(s.tasks, task{name: name, every: interval, run: fn})

	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, t := range s.tasks {
		s.wg.Add(1)

		go func() {
			defer s.wg.Done()

			s.loop(ctx, t)
		}()
	}
}

// Wait blocks until every task has observed the cancellation of the start context.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, t task) {
	l := slog.Default().With("job", t.name)

	ticker := time.NewTicker(t.every)
	defer ticker.Stop()

	for {
		start := time.Now()

		err := runSafely(ctx, t.run)
		if err != nil {
			metrics.JobRuns.WithLabelValues(t.name, "failed").Inc()
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			metrics.JobRuns.WithLabelValues(t.name, "ok").Inc()
			l.DebugContext(ctx, "job done", "duration_ms", time.Since(start).Milliseconds())
		}

		select {
		case <-ctx.Done():
			l.Debug("job stopped")
			return
		case <-ticker.C:
		}
	}
}

func runSafely(ctx context.Context, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return fn(ctx)
}

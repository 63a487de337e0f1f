package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/job"
)

func TestScheduler_RunsTasksUntilCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs, failures, panics atomic.Int32

	s := job.NewScheduler().
		Every("counter", 5*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		}).
		Every("failing", 5*time.Millisecond, func(context.Context) error {
			failures.Add(1)
			return errors.New("boom")
		}).
		Every("panicking", 5*time.Millisecond, func(context.Context) error {
			panics.Add(1)
			panic("oops")
		}).
		Every("disabled", 0, func(context.Context) error {
			t.Error("disabled task must not run")
			return nil
		})

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() >= 3 && failures.Load() >= 3 && panics.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	s.Wait()

	stopped := runs.Load()

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, stopped, runs.Load())
}

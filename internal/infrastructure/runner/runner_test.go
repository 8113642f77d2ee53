package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lucasdotdev/waveline/internal/infrastructure/runner"
	"github.com/stretchr/testify/require"
)

func TestRunner(t *testing.T) {
	t.Parallel()

	t.Run("it should stop the other tasks when one fails", func(t *testing.T) {
		r := runner.New(context.Background())

		failure := errors.New("task failed")
		r.Go(func(ctx context.Context) error {
			return failure
		})

		stopped := make(chan struct{})
		r.Go(func(ctx context.Context) error {
			<-ctx.Done()
			close(stopped)
			return ctx.Err()
		})

		require.ErrorIs(t, r.Wait(), failure)

		select {
		case <-stopped:
		default:
			t.Fatal("second task was not stopped")
		}
	})

	t.Run("it should propagate parent cancellation to the tasks", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		r := runner.New(ctx)
		r.Go(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		cancel()

		require.ErrorIs(t, r.Wait(), context.Canceled)
	})
}

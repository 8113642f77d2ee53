package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner runs the long-lived parts of the relay (the HTTP server, the fanout
// subscriber) as one errgroup. Tasks receive the group context: the first
// task to fail, or a cancellation of the parent context, stops the others.
type Runner struct {
	g   *errgroup.Group
	ctx context.Context
}

func New(ctx context.Context) *Runner {
	g, ctx := errgroup.WithContext(ctx)

	return &Runner{
		g:   g,
		ctx: ctx,
	}
}

func (r *Runner) Go(f func(ctx context.Context) error) {
	r.g.Go(func() error {
		return f(r.ctx)
	})
}

// Wait blocks until every task returned and yields the first error.
func (r *Runner) Wait() error {
	return r.g.Wait()
}

// File: foreach.go
// Title: Item Iteration
// Description: Sequential and bounded-parallel iteration over items, handing
//              each callback an ItemContext. Parallel iteration collects every
//              item failure into one aggregate error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial sequential implementation
// - 2026-10-16 v0.2.0: Added ForEachItemParallel on errgroup

package execution

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/mdwx/core/error"
)

type itemContext[T, S any] struct {
	ctx     context.Context
	index   int
	item    T
	state   S
	stopped *atomic.Bool
	cancel  context.CancelFunc
}

func (c *itemContext[T, S]) Context() context.Context { return c.ctx }
func (c *itemContext[T, S]) Index() int               { return c.index }
func (c *itemContext[T, S]) Item() T                  { return c.item }
func (c *itemContext[T, S]) State() S                 { return c.state }

func (c *itemContext[T, S]) Cancel() {
	c.stopped.Store(true)
	c.cancel()
}

func (c *itemContext[T, S]) IsCancelled() bool {
	return c.stopped.Load() || c.ctx.Err() != nil
}

// ForEachItem calls fn for every item in order. It stops at the first error,
// when an item calls Cancel, or when ctx is done. Cancel ends the iteration
// without an error; a done ctx fails with CodeCanceled.
func ForEachItem[T, S any](ctx context.Context, items []T, state S, fn func(ItemContext[T, S]) error) error {
	if items == nil {
		return mdwerror.ArgumentMissing("items")
	}
	if fn == nil {
		return mdwerror.ArgumentMissing("fn")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stopped atomic.Bool
	for i, item := range items {
		if stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return canceledError(err, i)
		}

		ic := &itemContext[T, S]{ctx: ctx, index: i, item: item, state: state, stopped: &stopped, cancel: cancel}
		if err := fn(ic); err != nil {
			return err
		}
	}
	return nil
}

// ForEachItemParallel calls fn for the items on at most limit goroutines. The
// first failure or an item calling Cancel stops items that have not started
// yet. All item failures are returned together as an aggregate error. fn must
// synchronize its own access to state.
func ForEachItemParallel[T, S any](ctx context.Context, items []T, state S, limit int, fn func(ItemContext[T, S]) error) error {
	if items == nil {
		return mdwerror.ArgumentMissing("items")
	}
	if fn == nil {
		return mdwerror.ArgumentMissing("fn")
	}
	if limit <= 0 {
		return mdwerror.OutOfRange("limit", limit)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var stopped atomic.Bool
	errs := make([]error, len(items))
	for i, item := range items {
		g.Go(func() error {
			if stopped.Load() || gctx.Err() != nil {
				return nil
			}

			ic := &itemContext[T, S]{ctx: gctx, index: i, item: item, state: state, stopped: &stopped, cancel: cancel}
			if err := fn(ic); err != nil {
				errs[i] = err
				return err
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := mdwerror.Aggregate(errs...); err != nil {
		return err
	}
	if !stopped.Load() {
		if err := ctx.Err(); err != nil {
			return canceledError(err, -1)
		}
	}
	return nil
}

func canceledError(cause error, index int) error {
	err := mdwerror.Wrap(cause, "iteration canceled").WithCode(mdwerror.CodeCanceled)
	if index >= 0 {
		err.WithDetail("index", index)
	}
	return err
}

// File: task.go
// Title: Asynchronous Tasks
// Description: Task implements TaskContext on top of go-asynctask and adds a
//              typed Result accessor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Final state recorded on every exit, panics fail the task

package execution

import (
	"context"
	"sync"
	"time"

	"github.com/Azure/go-asynctask"

	mdwerror "github.com/msto63/mdwx/core/error"
)

// TaskFunc is the work run by a Task
type TaskFunc[T any] func(ctx context.Context) (*T, error)

// Task is a cancelable, waitable handle for background work
type Task[T any] struct {
	task *asynctask.Task[T]

	mu    sync.Mutex
	state TaskState
}

var _ TaskContext = (*Task[struct{}])(nil)

// StartTask runs fn in the background and returns its handle
func StartTask[T any](ctx context.Context, fn TaskFunc[T]) (*Task[T], error) {
	if fn == nil {
		return nil, mdwerror.ArgumentMissing("fn")
	}

	t := &Task[T]{state: TaskRunning}
	t.task = asynctask.Start(ctx, func(taskCtx context.Context) (result *T, err error) {
		state := TaskFailed
		defer func() {
			if r := recover(); r != nil {
				result = nil
				err = mdwerror.Newf("task panicked: %v", r).WithCode(mdwerror.CodeInternal)
				state = TaskFailed
			}
			t.finish(state)
		}()

		result, err = fn(taskCtx)
		switch {
		case err == nil:
			state = TaskCompleted
		case taskCtx.Err() != nil:
			state = TaskCanceled
		}
		return result, err
	})
	return t, nil
}

// CompletedTask returns a task that already finished with value
func CompletedTask[T any](value *T) *Task[T] {
	return &Task[T]{
		task:  asynctask.NewCompletedTask(value),
		state: TaskCompleted,
	}
}

// finish records a final state unless one was already recorded
func (t *Task[T]) finish(state TaskState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TaskRunning {
		t.state = state
	}
}

// Wait blocks until the task finishes or ctx is done
func (t *Task[T]) Wait(ctx context.Context) error {
	return t.task.Wait(ctx)
}

// WaitWithTimeout is Wait bounded by timeout
func (t *Task[T]) WaitWithTimeout(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		return mdwerror.OutOfRange("timeout", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return t.task.Wait(ctx)
}

// Result waits for the task and returns its value
func (t *Task[T]) Result(ctx context.Context) (*T, error) {
	return t.task.Result(ctx)
}

// Cancel requests cancellation and reports whether the task was still running
func (t *Task[T]) Cancel() bool {
	if !t.task.Cancel() {
		return false
	}
	t.finish(TaskCanceled)
	return true
}

// IsCompleted reports whether the task reached a final state
func (t *Task[T]) IsCompleted() bool {
	return t.State() != TaskRunning
}

// State returns the current lifecycle state
func (t *Task[T]) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// File: contracts.go
// Title: Execution Contracts
// Description: Defines the item-execution context (cancelable iteration over
//              items with shared state) and the task context (a cancelable,
//              waitable handle for asynchronous work).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial contracts

package execution

import (
	"context"
	"time"
)

// ItemContext is handed to the callback for every item of an iteration
type ItemContext[T, S any] interface {
	// Context is canceled once the iteration stops for any reason
	Context() context.Context
	// Index is the position of the item in the input
	Index() int
	// Item is the element being processed
	Item() T
	// State is the value shared by all items of the iteration
	State() S
	// Cancel stops the iteration after the current item(s) without an error
	Cancel()
	// IsCancelled reports whether the iteration has been stopped
	IsCancelled() bool
}

// TaskContext is a handle for work running in the background
type TaskContext interface {
	// Wait blocks until the task finishes or ctx is done
	Wait(ctx context.Context) error
	// WaitWithTimeout is Wait bounded by timeout
	WaitWithTimeout(ctx context.Context, timeout time.Duration) error
	// Cancel requests cancellation; it reports whether the task was still running
	Cancel() bool
	// IsCompleted reports whether the task reached a final state
	IsCompleted() bool
	// State returns one of the TaskState values
	State() TaskState
}

// TaskState is the lifecycle state of a task
type TaskState string

const (
	TaskRunning   TaskState = "running"
	TaskCompleted TaskState = "completed"
	TaskFailed    TaskState = "failed"
	TaskCanceled  TaskState = "canceled"
)

package taskqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestQueue_Submit は投入したタスクがワーカーで実行されることを検証します。
func TestQueue_Submit(t *testing.T) {
	t.Parallel()

	q := New(2, 8)
	done := make(chan struct{})

	q.Submit("test task", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was not executed")
	}
	q.Shutdown()
}

// TestQueue_Shutdown はShutdownが待機中・実行中の全タスクの完了を待つことを検証します。
func TestQueue_Shutdown_DrainsAllTasks(t *testing.T) {
	t.Parallel()

	q := New(2, 16)
	var count atomic.Int64

	for i := 0; i < 10; i++ {
		q.Submit("counting task", func(ctx context.Context) error {
			count.Add(1)
			return nil
		})
	}

	q.Shutdown()
	assert.Equal(t, int64(10), count.Load(), "all submitted tasks must run before shutdown returns")
}

// TestQueue_FailureDoesNotStopWorker はタスクの失敗やpanicが後続タスクの実行を妨げないことを検証します。
func TestQueue_FailureDoesNotStopWorker(t *testing.T) {
	t.Parallel()

	q := New(1, 8)
	done := make(chan struct{})

	q.Submit("failing task", func(ctx context.Context) error {
		return errors.New("provider unavailable")
	})
	q.Submit("panicking task", func(ctx context.Context) error {
		panic("boom")
	})
	q.Submit("healthy task", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker died after a failed task")
	}
	q.Shutdown()
}

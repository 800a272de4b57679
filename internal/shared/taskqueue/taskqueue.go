// Package taskqueue はfire-and-forgetなバックグラウンドタスクの実行基盤を提供します。
package taskqueue

import (
	"context"
	"log/slog"
	"sync"
)

type task struct {
	name string
	fn   func(ctx context.Context) error
}

// Queue は固定数のワーカーで投入されたタスクを順に実行します。
//
// 投入側へ結果を返すチャネルは持ちません。タスクの失敗はログに残るだけで、
// 投入元のレスポンスには一切影響しません。一度投入されたタスクの
// キャンセル機構もありません（完了または失敗まで走り切ります）。
type Queue struct {
	tasks chan task
	wg    sync.WaitGroup
}

// New はworkers個のワーカーとbuffer分の待ち行列を持つQueueを生成します。
func New(workers, buffer int) *Queue {
	q := &Queue{tasks: make(chan task, buffer)}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Submit はタスクを待ち行列へ投入します。待ち行列が一杯の場合はブロックします。
func (q *Queue) Submit(name string, fn func(ctx context.Context) error) {
	q.tasks <- task{name: name, fn: fn}
}

// Shutdown は投入を締め切り、実行中・待機中のタスクが全て終わるまで待ちます。
func (q *Queue) Shutdown() {
	close(q.tasks)
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for t := range q.tasks {
		q.run(t)
	}
}

// run は1タスクを実行します。panicしてもワーカーを道連れにしません。
func (q *Queue) run(t task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("background task panicked", "task", t.name, "panic", r)
		}
	}()

	if err := t.fn(context.Background()); err != nil {
		slog.Error("background task failed", "task", t.name, "error", err)
	}
}

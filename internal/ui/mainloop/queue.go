// Package mainloop schedules work to run after the current UI pass.
package mainloop

import "sync"

// Task is a handle to queued work. Its methods belong to the UI thread.
type Task struct {
	fn        func()
	cancelled bool
	done      bool
}

// Cancel prevents the task from running. Returns false if it already ran
// or was already cancelled.
func (t *Task) Cancel() bool {
	if t == nil || t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task is still waiting to run.
func (t *Task) Pending() bool {
	return t != nil && !t.done && !t.cancelled
}

// Queue runs tasks in FIFO order once the host's post function fires.
// Tasks posted while the queue drains run in the same drain, after every
// task queued before them. Tasks read live state when they run, never a
// snapshot taken at post time.
type Queue struct {
	mu        sync.Mutex
	post      func(func())
	tasks     []*Task
	scheduled bool
	draining  bool
	destroyed bool
}

// NewQueue creates a queue that asks post to run its drain on the UI thread.
func NewQueue(post func(func())) *Queue {
	if post == nil {
		panic("mainloop.NewQueue: post function cannot be nil")
	}
	return &Queue{post: post}
}

// Post enqueues fn and returns its handle. Returns nil after Destroy.
func (q *Queue) Post(fn func()) *Task {
	if fn == nil {
		return nil
	}

	q.mu.Lock()
	if q.destroyed {
		q.mu.Unlock()
		return nil
	}
	task := &Task{fn: fn}
	q.tasks = append(q.tasks, task)
	schedule := !q.scheduled && !q.draining
	if schedule {
		q.scheduled = true
	}
	post := q.post
	q.mu.Unlock()

	if schedule {
		post(q.drain)
	}
	return task
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, t := range q.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (q *Queue) drain() {
	q.mu.Lock()
	q.scheduled = false
	q.draining = true
	q.mu.Unlock()

	for {
		q.mu.Lock()
		if q.destroyed || len(q.tasks) == 0 {
			q.draining = false
			q.tasks = nil
			q.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		if task.cancelled {
			continue
		}
		task.done = true
		task.fn()
	}
}

// Destroy drops pending work; later posts are ignored.
func (q *Queue) Destroy() {
	q.mu.Lock()
	q.destroyed = true
	for _, t := range q.tasks {
		t.cancelled = true
	}
	q.tasks = nil
	q.mu.Unlock()
}

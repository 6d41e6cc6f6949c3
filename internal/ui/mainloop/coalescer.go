package mainloop

import "sync"

// Coalescer keeps at most one pending task per key. Posting again under a
// key cancels the superseded task and queues the new one at the tail.
type Coalescer struct {
	mu        sync.Mutex
	queue     *Queue
	pending   map[string]*Task
	destroyed bool
}

// NewCoalescer creates a coalescer feeding queue.
func NewCoalescer(queue *Queue) *Coalescer {
	if queue == nil {
		panic("mainloop.NewCoalescer: queue cannot be nil")
	}

	return &Coalescer{
		queue:   queue,
		pending: make(map[string]*Task),
	}
}

// Post schedules fn under key, superseding any pending task for that key.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	if prev := c.pending[key]; prev != nil {
		prev.Cancel()
		delete(c.pending, key)
	}
	c.mu.Unlock()

	// The queue may drain inline, so post without holding the lock.
	var task *Task
	task = c.queue.Post(func() {
		c.mu.Lock()
		if c.pending[key] == task {
			delete(c.pending, key)
		}
		c.mu.Unlock()
		fn()
	})

	c.mu.Lock()
	if task.Pending() && !c.destroyed {
		c.pending[key] = task
	}
	c.mu.Unlock()
}

// Cancel drops the pending task for key. Returns false if none was pending.
func (c *Coalescer) Cancel(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	task := c.pending[key]
	delete(c.pending, key)
	return task.Cancel()
}

// Pending reports whether work is queued under key.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending[key].Pending()
}

// Destroy cancels everything pending; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	for _, task := range c.pending {
		task.Cancel()
	}
	c.pending = map[string]*Task{}
	c.mu.Unlock()
}

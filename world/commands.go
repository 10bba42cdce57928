package world

// CommandFunc is one deferred mutation. It runs against the world during
// ApplyDeferred, after the system that queued it has returned.
type CommandFunc func(*World) error

// Commands collects deferred mutations in FIFO order. Systems queue
// changes they must not perform mid-run; the runner applies them before
// the next system observes the world.
type Commands struct {
	queue []CommandFunc
}

// Queue appends a deferred mutation. Nil functions are ignored.
func (c *Commands) Queue(fn CommandFunc) {
	if fn == nil {
		return
	}
	c.queue = append(c.queue, fn)
}

// Len returns the number of pending mutations.
func (c *Commands) Len() int {
	return len(c.queue)
}

// drain removes and returns the pending queue.
func (c *Commands) drain() []CommandFunc {
	q := c.queue
	c.queue = nil
	return q
}

// clear drops the pending queue.
func (c *Commands) clear() {
	c.queue = nil
}

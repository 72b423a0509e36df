package models

import "sync/atomic"

// Counter tracks how many accounts are live in the process. Updates are
// atomic so concurrent observers always read a consistent value.
type Counter struct {
	live atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) increment() {
	c.live.Add(1)
}

func (c *Counter) release() {
	c.live.Add(-1)
}

// Live reports the number of accounts currently open.
func (c *Counter) Live() int64 {
	return c.live.Load()
}

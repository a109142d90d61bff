package metrics

import "sync/atomic"

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Process-wide counters. These are cheap operational signals, not durable
// state; the dashboard stats come from the database.
var (
	CodeCollisions Counter
	OrdersCreated  Counter
	OrdersApproved Counter
	OrdersRejected Counter
)

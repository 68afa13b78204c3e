// Package counter defines a contention-adaptive striped counter.
//
// A Counter starts as a single atomic scalar. When an update observes that
// another goroutine interleaved with it, the counter lazily grows an array
// of padded cells (up to twice the number of logical CPUs) and spreads
// later updates over them. Reading the exact value sums the scalar and all
// the cells.
//
// The zero Counter is ready to use. It must not be copied after first use.
package counter

import (
	"log/slog"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const (
	cellWords = 16 // 128 bytes per cell: more than a cache line
	cellSlot  = 7  // the live word, away from both edges of the block
	minCells  = 3
)

var (
	maxCells = 2 * runtime.NumCPU()

	epoch = time.Now()

	// nowMillis is a monotonic millisecond clock; tests replace it.
	nowMillis = func() int64 { return time.Since(epoch).Milliseconds() }

	// cellsFor sizes a grown cell array; tests replace it.
	cellsFor = nextPrime

	// interleave, when set, runs between the snapshot and the atomic add.
	interleave func(slot *atomic.Int64)
)

type cell struct {
	words [cellWords]atomic.Int64
}

func (c *cell) value() *atomic.Int64 {
	return &c.words[cellSlot]
}

type cells []*cell

// Counter is a concurrent int64 counter.
type Counter struct {
	base  atomic.Int64
	cells atomic.Pointer[cells]

	estMu    sync.Mutex // guards recomputation only, never waited on
	estUntil atomic.Int64
	estCount atomic.Int64
}

// New returns a new Counter.
func New() *Counter {
	return &Counter{}
}

// Increment adds 1 to the counter.
func (c *Counter) Increment() { c.add(c.slot(), 1) }

// IncrementHash adds 1 to the counter using the hash to select a cell.
func (c *Counter) IncrementHash(hash uint32) { c.add(c.slotHash(hash), 1) }

// Decrement subtracts 1 from the counter.
func (c *Counter) Decrement() { c.add(c.slot(), -1) }

// DecrementHash subtracts 1 from the counter using the hash to select a cell.
func (c *Counter) DecrementHash(hash uint32) { c.add(c.slotHash(hash), -1) }

// Add adds a value to the counter.
func (c *Counter) Add(val int64) { c.add(c.slot(), val) }

// AddHash adds a value to the counter using the hash to select a cell.
func (c *Counter) AddHash(val int64, hash uint32) { c.add(c.slotHash(hash), val) }

// Sub subtracts a value from the counter.
func (c *Counter) Sub(val int64) { c.add(c.slot(), -val) }

// SubHash subtracts a value from the counter using the hash to select a cell.
func (c *Counter) SubHash(val int64, hash uint32) { c.add(c.slotHash(hash), -val) }

// Count returns the exact value: the scalar plus every cell.
func (c *Counter) Count() int64 {
	count := c.base.Load()

	if cs := c.cells.Load(); cs != nil {
		for _, cl := range *cs {
			count += cl.value().Load()
		}
	}

	return count
}

// EstimatedCount returns a recently computed exact value. The cached value
// stays valid for a number of milliseconds proportional to the number of
// cells. When it expires the value is recomputed unless another goroutine
// is already doing so, in which case the stale value is returned.
func (c *Counter) EstimatedCount() int64 {
	var (
		until  = c.estUntil.Load()
		cached = c.estCount.Load()
		now    = nowMillis()
	)

	if now < until {
		return cached
	}

	return c.estimateSlow(cached, now)
}

func (c *Counter) estimateSlow(stale, now int64) int64 {
	if !c.estMu.TryLock() {
		return stale
	}
	defer c.estMu.Unlock()

	count := c.Count()

	c.estCount.Store(count)
	c.estUntil.Store(now + 1 + int64(c.Cells()))

	return count
}

// Clear drives the counter to zero by subtracting its current value.
// Updates racing with Clear are preserved.
func (c *Counter) Clear() {
	c.Sub(c.Count())
}

// Cells returns the number of cells allocated so far.
func (c *Counter) Cells() int {
	if cs := c.cells.Load(); cs != nil {
		return len(*cs)
	}

	return 0
}

// slot picks a cell pseudo-randomly, or the scalar while there are no cells.
func (c *Counter) slot() *atomic.Int64 {
	cs := c.cells.Load()
	if cs == nil {
		return &c.base
	}

	// rand.Uint32 draws from per-thread runtime state: no locks, no allocations
	return (*cs)[rand.Uint32()%uint32(len(*cs))].value()
}

func (c *Counter) slotHash(hash uint32) *atomic.Int64 {
	cs := c.cells.Load()
	if cs == nil {
		return &c.base
	}

	return (*cs)[hash%uint32(len(*cs))].value()
}

// add applies delta and grows the cells when another update interleaved
// between the snapshot and the atomic add.
func (c *Counter) add(slot *atomic.Int64, delta int64) {
	before := slot.Load()

	if interleave != nil {
		interleave(slot)
	}

	if slot.Add(delta)-delta != before {
		c.grow()
	}
}

func (c *Counter) grow() {
	var (
		old    = c.cells.Load()
		length int
	)

	if old != nil {
		length = len(*old)
	}

	if length >= maxCells {
		return
	}

	size, err := cellsFor(length + 2)
	if err != nil {
		slog.Warn("counter: cells not grown", "cells", length, "error", err)
		return
	}

	size = max(size, minCells)

	grown := make(cells, size)
	copy(grown, derefCells(old))

	for i := length; i < size; i++ {
		grown[i] = new(cell)
	}

	// losing the race is fine: someone else grew it already
	c.cells.CompareAndSwap(old, &grown)
}

func derefCells(cs *cells) cells {
	if cs == nil {
		return nil
	}

	return *cs
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// minRingCapacity is the smallest ring lfq can build.
// Smaller logical capacities are enforced by the put/take counters.
const minRingCapacity = 2

// Channel is a bounded FIFO blocking mailbox of capacity N.
// Take blocks while empty, Put blocks while full, and both fail with
// ErrClosed once the channel is closed.
//
// Transport is a lock-free ring from lfq. NewChannel builds an SPSC
// ring: one goroutine may put and one goroutine may take at any time.
// NewMPSCChannel builds an MPSC ring whose put side may be shared by
// several goroutines; the take side stays single-consumer. lfq rounds
// ring capacity up to a power of two, so the exact logical capacity is
// enforced with put/take counters.
type Channel[T any] struct {
	ring      lfq.Queue[T]
	capacity  uint32
	sharedPut bool
	puts      atomix.Uint32 // single putter: plain add; shared put: CAS reservation
	takes     atomix.Uint32 // written only by the taker
	closed    atomix.Uint32
}

// NewChannel creates a bounded SPSC channel with the given logical
// capacity: one putting goroutine and one taking goroutine.
// Returns ErrInvalidCapacity if capacity is not positive.
func NewChannel[T any](capacity int) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Channel[T]{
		ring:     lfq.NewSPSC[T](ringCapacity(capacity)),
		capacity: uint32(capacity),
	}, nil
}

// NewMPSCChannel creates a bounded channel whose put side may be
// shared by multiple goroutines; the take side remains single-consumer.
// The compact CAS-based MPSC ring is used: it carries no dequeue
// threshold, so the taker can drain buffered items after the putters
// go quiescent. Returns ErrInvalidCapacity if capacity is not positive.
func NewMPSCChannel[T any](capacity int) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Channel[T]{
		ring:      lfq.BuildMPSC[T](lfq.New(ringCapacity(capacity)).SingleConsumer().Compact()),
		capacity:  uint32(capacity),
		sharedPut: true,
	}, nil
}

func ringCapacity(capacity int) int {
	if capacity < minRingCapacity {
		return minRingCapacity
	}
	return capacity
}

// TryPut places v at the tail of the channel without blocking.
// Returns ErrClosed if the channel is closed, or iox.ErrWouldBlock
// if the channel is at capacity.
func (c *Channel[T]) TryPut(v T) error {
	if c.closed.Load() != 0 {
		return ErrClosed
	}
	if c.sharedPut {
		return c.tryPutShared(v)
	}
	if c.puts.Load()-c.takes.Load() >= c.capacity {
		return iox.ErrWouldBlock
	}
	if err := c.ring.Enqueue(&v); err != nil {
		return err
	}
	c.puts.Add(1)
	return nil
}

// tryPutShared admits concurrent putters: the capacity check and the
// put-counter increment are a single CAS reservation, so two putters
// racing for the last slot cannot both pass.
func (c *Channel[T]) tryPutShared(v T) error {
	for {
		p := c.puts.Load()
		if p-c.takes.Load() >= c.capacity {
			return iox.ErrWouldBlock
		}
		if c.puts.CompareAndSwap(p, p+1) {
			break
		}
	}
	if err := c.ring.Enqueue(&v); err != nil {
		c.puts.Add(^uint32(0)) // release the reservation
		return err
	}
	return nil
}

// TryTake removes and returns the head of the channel without blocking.
// Returns ErrClosed if the channel is closed (even if items remain
// buffered), or iox.ErrWouldBlock if the channel is empty.
func (c *Channel[T]) TryTake() (T, error) {
	var zero T
	if c.closed.Load() != 0 {
		return zero, ErrClosed
	}
	v, err := c.ring.Dequeue()
	if err != nil {
		return zero, err
	}
	c.takes.Add(1)
	return v, nil
}

// Put places v at the tail of the channel, waiting past the full
// boundary with adaptive backoff. Fails with ErrClosed once the
// channel is closed, releasing a blocked caller.
func (c *Channel[T]) Put(v T) error {
	var bo iox.Backoff
	for {
		err := c.TryPut(v)
		if !iox.IsWouldBlock(err) {
			return err
		}
		bo.Wait()
	}
}

// Take removes and returns the head of the channel, waiting past the
// empty boundary with adaptive backoff. Fails with ErrClosed once the
// channel is closed, releasing a blocked caller.
func (c *Channel[T]) Take() (T, error) {
	var bo iox.Backoff
	for {
		v, err := c.TryTake()
		if !iox.IsWouldBlock(err) {
			return v, err
		}
		bo.Wait()
	}
}

// Close marks the channel closed. All blocked and subsequent Put/Take
// calls fail with ErrClosed. Closing an already-closed channel is a
// no-op; the close counter only ever rises.
func (c *Channel[T]) Close() {
	c.closed.Add(1)
}

// Closed reports whether the channel has been closed.
func (c *Channel[T]) Closed() bool {
	return c.closed.Load() != 0
}

// Len returns the number of items currently buffered.
// The result is exact only while both sides are quiescent.
func (c *Channel[T]) Len() int {
	return int(c.puts.Load() - c.takes.Load())
}

// Cap returns the logical capacity fixed at construction.
func (c *Channel[T]) Cap() int {
	return int(c.capacity)
}

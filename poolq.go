// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq

// PoolQueue owns a pool channel of free items and a queue channel of
// ready items as a single unit. Items placed into the pool at
// construction circulate between producer and consumer through the
// acquire, produce, consume, recycle cycle; the core never drops or
// duplicates an item.
//
// While an item is held between Acquire and Produce only the producer
// may touch it; while held between Consume and Recycle only the
// consumer may. Inside either channel it belongs to no one. This is a
// usage contract, not enforced by the core.
type PoolQueue[T any] struct {
	pool   *Channel[T]
	queue  *Channel[T]
	serial Serial
}

// Config describes a PoolQueue to construct. Both capacities are
// required; QueueCapacity is never inferred from PoolCapacity.
type Config[T any] struct {
	// PoolCapacity is the pool channel capacity. NewItem is invoked
	// exactly this many times to pre-fill the pool.
	PoolCapacity int

	// QueueCapacity is the queue channel capacity.
	QueueCapacity int

	// NewItem constructs one fresh item. Required.
	NewItem func() T
}

// FromChannels builds a PoolQueue over two existing channels carrying
// the same item type. The channels are used as-is; no items are added.
//
// The pool channel's put side is shared between the consumer's Recycle
// and the producer-side recycle inside ProduceWith (Skip and callback
// error), so it should come from NewMPSCChannel; an SPSC pool is safe
// only if ProduceWith is never used. The queue channel has one putter
// and one taker and should come from NewChannel.
func FromChannels[T any](pool, queue *Channel[T]) *PoolQueue[T] {
	return &PoolQueue[T]{pool: pool, queue: queue, serial: nextSerial()}
}

// New creates a PoolQueue with fresh empty channels of the given
// capacities: an MPSC pool channel (both actors put into the pool) and
// an SPSC queue channel. The caller seeds circulation by recycling
// items. Returns ErrInvalidCapacity if either capacity is not positive.
func New[T any](poolCapacity, queueCapacity int) (*PoolQueue[T], error) {
	pool, err := NewMPSCChannel[T](poolCapacity)
	if err != nil {
		return nil, err
	}
	queue, err := NewChannel[T](queueCapacity)
	if err != nil {
		return nil, err
	}
	return FromChannels(pool, queue), nil
}

// NewFromConfig creates a PoolQueue and pre-fills the pool by invoking
// cfg.NewItem exactly cfg.PoolCapacity times, recycling each item.
// Returns ErrInvalidCapacity or ErrNilFactory on a bad config; no
// partial PoolQueue is returned.
func NewFromConfig[T any](cfg Config[T]) (*PoolQueue[T], error) {
	if cfg.NewItem == nil {
		return nil, ErrNilFactory
	}
	pq, err := New[T](cfg.PoolCapacity, cfg.QueueCapacity)
	if err != nil {
		return nil, err
	}
	for range cfg.PoolCapacity {
		if err := pq.Recycle(cfg.NewItem()); err != nil {
			return nil, err
		}
	}
	return pq, nil
}

// Acquire takes a free item from the pool, blocking while the pool is
// empty. An empty pool means every slot is in the queue or held by the
// consumer; blocking here is what throttles the producer.
func (pq *PoolQueue[T]) Acquire() (T, error) {
	return pq.pool.Take()
}

// Produce places a filled item onto the queue, blocking while the
// queue is full. A full queue means the consumer is behind; blocking
// here is the backpressure path.
func (pq *PoolQueue[T]) Produce(item T) error {
	return pq.queue.Put(item)
}

// Consume takes a ready item from the queue, blocking while the queue
// is empty.
func (pq *PoolQueue[T]) Consume() (T, error) {
	return pq.queue.Take()
}

// Recycle returns a processed item to the pool, blocking while the
// pool is full. Cannot block under correct usage: total circulating
// items never exceed the pool capacity.
func (pq *PoolQueue[T]) Recycle(item T) error {
	return pq.pool.Put(item)
}

// TryAcquire is the non-blocking Acquire.
// Returns iox.ErrWouldBlock when the pool is empty.
func (pq *PoolQueue[T]) TryAcquire() (T, error) {
	return pq.pool.TryTake()
}

// TryProduce is the non-blocking Produce.
// Returns iox.ErrWouldBlock when the queue is full.
func (pq *PoolQueue[T]) TryProduce(item T) error {
	return pq.queue.TryPut(item)
}

// TryConsume is the non-blocking Consume.
// Returns iox.ErrWouldBlock when the queue is empty.
func (pq *PoolQueue[T]) TryConsume() (T, error) {
	return pq.queue.TryTake()
}

// TryRecycle is the non-blocking Recycle.
// Returns iox.ErrWouldBlock when the pool is full.
func (pq *PoolQueue[T]) TryRecycle(item T) error {
	return pq.pool.TryPut(item)
}

// Close shuts down the PoolQueue: the queue channel first, then the
// pool channel. The order releases consumers blocked in Consume before
// producers blocked in Acquire or Recycle.
func (pq *PoolQueue[T]) Close() {
	pq.queue.Close()
	pq.pool.Close()
}

// CloseQueue closes only the queue channel, stopping production and
// consumption while leaving the pool open. Used by Drive on exit;
// full shutdown remains with Close.
func (pq *PoolQueue[T]) CloseQueue() {
	pq.queue.Close()
}

// Serial returns the serial number assigned to this PoolQueue.
func (pq *PoolQueue[T]) Serial() Serial {
	return pq.serial
}

// Pool returns the pool channel.
func (pq *PoolQueue[T]) Pool() *Channel[T] {
	return pq.pool
}

// Queue returns the queue channel.
func (pq *PoolQueue[T]) Queue() *Channel[T] {
	return pq.queue
}

// PoolLen returns the number of free items currently in the pool.
func (pq *PoolQueue[T]) PoolLen() int {
	return pq.pool.Len()
}

// QueueLen returns the number of ready items currently in the queue.
func (pq *PoolQueue[T]) QueueLen() int {
	return pq.queue.Len()
}

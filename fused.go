// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq

import (
	"code.hybscloud.com/kont"
)

// Yield is the result of a ProduceWith callback: Emit carries a value
// to place on the queue, Skip declines to produce this cycle.
// Modeled as kont.Either so the skip path is type-safe rather than a
// sentinel reference.
type Yield[T any] = kont.Either[struct{}, T]

// Emit wraps v as a value to be produced onto the queue.
func Emit[T any](v T) Yield[T] {
	return kont.Right[struct{}](v)
}

// Skip declines production for this cycle. The acquired item goes
// straight back to the pool without touching the queue.
func Skip[T any]() Yield[T] {
	return kont.Left[struct{}, T](struct{}{})
}

// ProduceWith fuses acquire and produce around f. It acquires a free
// item, invokes f, and then either produces the emitted value onto the
// queue or, on Skip, recycles the acquired item back to the pool. This
// is the only path by which an acquired item may bypass the consumer;
// the slot always returns to circulation.
//
// An error from f is propagated unmodified after the acquired item has
// been recycled. Returns whatever f returned.
func (pq *PoolQueue[T]) ProduceWith(f func(item T) (Yield[T], error)) (Yield[T], error) {
	var zero Yield[T]
	item, err := pq.Acquire()
	if err != nil {
		return zero, err
	}
	out, err := f(item)
	if err != nil {
		// Return the slot before surfacing the callback error.
		_ = pq.Recycle(item)
		return zero, err
	}
	if v, ok := out.GetRight(); ok {
		return out, pq.Produce(v)
	}
	return out, pq.Recycle(item)
}

// ConsumeWith fuses consume and recycle around f. It consumes a ready
// item, invokes f, and unconditionally recycles f's returned item,
// which may or may not be the one consumed. There is deliberately no
// skip form on this side: the pool always regains its capacity.
//
// An error from f is propagated unmodified after the consumed item has
// been recycled. Returns the item that was recycled.
func (pq *PoolQueue[T]) ConsumeWith(f func(item T) (T, error)) (T, error) {
	item, err := pq.Consume()
	if err != nil {
		var zero T
		return zero, err
	}
	next, err := f(item)
	if err != nil {
		_ = pq.Recycle(item)
		var zero T
		return zero, err
	}
	if err := pq.Recycle(next); err != nil {
		return next, err
	}
	return next, nil
}

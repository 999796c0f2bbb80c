// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package poolq provides a bounded pool/queue pair for allocation-free
// item recycling between one producer and one consumer.
//
// A [PoolQueue] owns two bounded FIFO channels of the same item type:
// a pool of free items and a queue of ready items. The producer acquires
// a free item from the pool, fills it, and produces it onto the queue;
// the consumer consumes it from the queue, processes it, and recycles it
// back to the pool. Items circulate indefinitely; after construction no
// further allocation is needed.
//
// # Architecture
//
//   - Transport: Lock-free bounded queues via [code.hybscloud.com/lfq],
//     wrapped by [Channel] which enforces exact logical capacity. The queue
//     channel is SPSC; the pool channel is MPSC because both actors put
//     into it (the consumer on recycle, the producer on a skipped cycle).
//   - Non-blocking: Try-operations return [code.hybscloud.com/iox.ErrWouldBlock]
//     on backpressure.
//   - Blocking: [PoolQueue.Acquire], [PoolQueue.Produce], [PoolQueue.Consume]
//     and [PoolQueue.Recycle] wait past the boundary using adaptive backoff.
//   - Shutdown: [PoolQueue.Close] closes the queue and then the pool;
//     blocked and subsequent operations fail with [ErrClosed].
//
// # API Topologies
//
//   - Primitives: [PoolQueue.Acquire], [PoolQueue.Produce],
//     [PoolQueue.Consume], [PoolQueue.Recycle], plus TryAcquire/TryProduce/
//     TryConsume/TryRecycle non-blocking variants.
//   - Fused: [PoolQueue.ProduceWith] acquires, applies a callback, and either
//     produces the emitted value or recycles on [Skip]. [PoolQueue.ConsumeWith]
//     consumes, applies a callback, and always recycles the returned item.
//   - Driver: [Drive] pulls textual commands from a [CommandSource] and hands
//     each to a production function until the source is exhausted.
//
// # Flow Control
//
// Backpressure is the only flow-control mechanism. Acquiring from an empty
// pool blocks until the consumer recycles a slot; producing onto a full
// queue blocks until the consumer drains one. The total number of items in
// circulation never exceeds pool capacity plus queue capacity.
//
// # Example
//
//	pq, _ := poolq.NewFromConfig(poolq.Config[*Buf]{
//		PoolCapacity:  4,
//		QueueCapacity: 4,
//		NewItem:       func() *Buf { return &Buf{Data: make([]byte, 4096)} },
//	})
//	go func() { // producer
//		for {
//			buf, err := pq.Acquire()
//			if err != nil {
//				return
//			}
//			fill(buf)
//			if err := pq.Produce(buf); err != nil {
//				return
//			}
//		}
//	}()
//	for { // consumer
//		buf, err := pq.Consume()
//		if err != nil {
//			break
//		}
//		process(buf)
//		if err := pq.Recycle(buf); err != nil {
//			break
//		}
//	}
package poolq

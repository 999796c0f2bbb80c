// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq_test

import (
	"testing"

	"code.hybscloud.com/poolq"
)

// BenchmarkLifecycle measures one acquire/produce/consume/recycle cycle.
func BenchmarkLifecycle(b *testing.B) {
	pq := newBoxQueue(b, 4, 4)
	b.ReportAllocs()
	for b.Loop() {
		item, err := pq.Acquire()
		if err != nil {
			b.Fatal(err)
		}
		if err := pq.Produce(item); err != nil {
			b.Fatal(err)
		}
		item, err = pq.Consume()
		if err != nil {
			b.Fatal(err)
		}
		if err := pq.Recycle(item); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFusedRoundTrip measures a ProduceWith/ConsumeWith pair.
func BenchmarkFusedRoundTrip(b *testing.B) {
	pq := newBoxQueue(b, 4, 4)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := pq.ProduceWith(func(item *box) (poolq.Yield[*box], error) {
			return poolq.Emit(item), nil
		}); err != nil {
			b.Fatal(err)
		}
		if _, err := pq.ConsumeWith(func(item *box) (*box, error) {
			return item, nil
		}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkProduceWithSkip measures the skip path: acquire then
// straight recycle without touching the queue.
func BenchmarkProduceWithSkip(b *testing.B) {
	pq := newBoxQueue(b, 4, 4)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := pq.ProduceWith(func(item *box) (poolq.Yield[*box], error) {
			return poolq.Skip[*box](), nil
		}); err != nil {
			b.Fatal(err)
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq_test

import (
	"testing"

	"code.hybscloud.com/poolq"
)

// box is the reusable item type used throughout the tests.
type box struct {
	n int
}

// newBoxQueue builds a pre-filled PoolQueue of *box with the given
// capacities, failing the test on construction errors.
func newBoxQueue(tb testing.TB, poolCapacity, queueCapacity int) *poolq.PoolQueue[*box] {
	tb.Helper()
	pq, err := poolq.NewFromConfig(poolq.Config[*box]{
		PoolCapacity:  poolCapacity,
		QueueCapacity: queueCapacity,
		NewItem:       func() *box { return new(box) },
	})
	if err != nil {
		tb.Fatalf("NewFromConfig(%d, %d): %v", poolCapacity, queueCapacity, err)
	}
	return pq
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"code.hybscloud.com/poolq"
)

// chunk is a reusable read buffer. last marks end of stream; the end
// marker is an application convention, not part of the core.
type chunk struct {
	buf  []byte
	n    int
	last bool
}

// TestHexDumpRoundTrip runs the two-actor scenario end to end: a
// producer reads a 256-byte stream through a 2/2-capacity PoolQueue of
// 16-byte chunks, and a consumer renders each chunk as a line of
// two-digit hex pairs. Every byte must arrive exactly once, in order.
func TestHexDumpRoundTrip(t *testing.T) {
	skipRace(t)

	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}
	src := bytes.NewReader(input)

	pq, err := poolq.NewFromConfig(poolq.Config[*chunk]{
		PoolCapacity:  2,
		QueueCapacity: 2,
		NewItem:       func() *chunk { return &chunk{buf: make([]byte, 16)} },
	})
	if err != nil {
		t.Fatal(err)
	}

	go func() { // producer
		for {
			c, err := pq.Acquire()
			if err != nil {
				return
			}
			n, _ := src.Read(c.buf)
			c.n = n
			c.last = n == 0
			if err := pq.Produce(c); err != nil {
				return
			}
			if c.last {
				return
			}
		}
	}()

	var lines []string
	for {
		c, err := pq.Consume()
		if err != nil {
			t.Fatalf("Consume: %v", err)
		}
		if c.last {
			if err := pq.Recycle(c); err != nil {
				t.Fatalf("Recycle: %v", err)
			}
			break
		}
		pairs := make([]string, c.n)
		for i, b := range c.buf[:c.n] {
			pairs[i] = fmt.Sprintf("%02x", b)
		}
		lines = append(lines, strings.Join(pairs, " "))
		if err := pq.Recycle(c); err != nil {
			t.Fatalf("Recycle: %v", err)
		}
	}

	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}
	for i, line := range lines {
		pairs := make([]string, 16)
		for j := range pairs {
			pairs[j] = fmt.Sprintf("%02x", i*16+j)
		}
		if want := strings.Join(pairs, " "); line != want {
			t.Fatalf("line %d = %q, want %q", i, line, want)
		}
	}
	if pq.PoolLen()+pq.QueueLen() != 2 {
		t.Fatalf("slots in circulation = %d, want 2", pq.PoolLen()+pq.QueueLen())
	}
}

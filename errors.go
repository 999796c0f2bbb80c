// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrClosed is returned by channel operations after Close.
	// Blocked operations fail with ErrClosed instead of waiting forever.
	ErrClosed = errors.New("poolq: channel closed")

	// ErrInvalidCapacity is returned by constructors when a requested
	// pool or queue capacity is not positive.
	ErrInvalidCapacity = errors.New("poolq: capacity must be positive")

	// ErrNilFactory is returned by NewFromConfig when Config.NewItem is nil.
	ErrNilFactory = errors.New("poolq: item factory must not be nil")
)

// IsClosed reports whether err indicates a closed channel.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsWouldBlock reports whether err is the non-blocking boundary signal
// returned by Try-operations on a full or empty channel.
// Sourced from [code.hybscloud.com/iox] for ecosystem consistency.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

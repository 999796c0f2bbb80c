// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poolq

import "log"

// CommandSource is a blocking, closable, ordered source of textual
// command tokens for Drive. *Channel[string] satisfies it.
type CommandSource interface {
	Take() (string, error)
	Close()
}

// ProduceFunc acts on one command, typically acquiring and producing
// items on pq. An error terminates the drive loop.
type ProduceFunc[T any] func(cmd string, pq *PoolQueue[T]) error

// Logger is the sink for Drive's diagnostic output.
// Injected rather than process-global so the loop stays testable.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// stdLogger adapts the standard library logger.
type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any) { log.Printf("INFO "+format, args...) }
func (stdLogger) Warnf(format string, args ...any) { log.Printf("WARN "+format, args...) }

// DefaultLogger writes through the standard library logger.
var DefaultLogger Logger = stdLogger{}

// nopLogger discards all output.
type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}

// NopLogger discards all Drive output.
var NopLogger Logger = nopLogger{}

// DriveOption customizes a Drive loop.
type DriveOption func(*driveConfig)

type driveConfig struct {
	log       Logger
	autoClose bool
}

// WithLogger sets the sink for end-of-stream and failure messages.
func WithLogger(l Logger) DriveOption {
	return func(cfg *driveConfig) {
		cfg.log = l
	}
}

// WithAutoClose controls whether Drive closes the queue channel and
// the command source on exit. Default true.
func WithAutoClose(v bool) DriveOption {
	return func(cfg *driveConfig) {
		cfg.autoClose = v
	}
}

// Drive repeatedly takes a command from cmds and invokes fn with it.
// The loop ends when the source fails (normal end-of-stream, logged at
// info level) or when fn returns an error (abnormal termination,
// logged at warning level). Neither terminal condition is propagated:
// Drive runs as a background task with no caller to report to.
//
// On exit, unless disabled via WithAutoClose, Drive closes the queue
// channel and the command source. The pool channel is left open;
// closing it remains with whoever calls PoolQueue.Close.
func Drive[T any](pq *PoolQueue[T], cmds CommandSource, fn ProduceFunc[T], opts ...DriveOption) {
	cfg := driveConfig{log: DefaultLogger, autoClose: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	for {
		cmd, err := cmds.Take()
		if err != nil {
			cfg.log.Infof("poolq: command source finished: %v", err)
			break
		}
		if err := fn(cmd, pq); err != nil {
			cfg.log.Warnf("poolq: production failed on %q: %v", cmd, err)
			break
		}
	}
	if cfg.autoClose {
		pq.CloseQueue()
		cmds.Close()
	}
}

// Package diag provides the diagnostic sink used by the bounded operations.
// The operations themselves never fail towards the caller; out-of-range
// conditions are reported here as fire-and-forget text messages so the
// surrounding host (browser console, WASI stderr, native logger) can
// surface them.
package diag

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// Sink consumes diagnostic messages. Implementations must not block for
// long; emission happens on the caller's goroutine.
type Sink interface {
	Diagnostic(msg string)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(msg string)

func (f SinkFunc) Diagnostic(msg string) {
	f(msg)
}

// atomic.Value needs a single concrete type, so sinks are boxed.
type sinkBox struct {
	s Sink
}

var sink atomic.Value // holds a sinkBox

func init() {
	// stderr until a host installs something better
	sink.Store(sinkBox{s: SinkFunc(func(msg string) {
		os.Stderr.WriteString(msg + "\n")
	})})
}

// SetSink replaces the process-wide sink. A nil sink silences diagnostics.
func SetSink(s Sink) {
	if s == nil {
		s = SinkFunc(func(string) {})
	}
	sink.Store(sinkBox{s: s})
}

// Emit sends msg to the current sink. It never fails and never retries.
func Emit(msg string) {
	sink.Load().(sinkBox).s.Diagnostic(msg)
}

// NewZapSink returns a Sink that reports diagnostics as warnings on logger.
func NewZapSink(logger *zap.Logger) Sink {
	return SinkFunc(func(msg string) {
		logger.Warn(msg)
	})
}

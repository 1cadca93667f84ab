// Package ops implements the two guarded operations exported over the
// WASM boundary. Both substitute a fixed sentinel result instead of
// raising an error when their input guard trips, so callers only ever see
// a value.
package ops

import (
	"fmt"
	"math"

	"github.com/fadumoaideed/swiftreader/internal/diag"
)

// MaxNameLen is the length cap for Greet, measured in bytes.
const MaxNameLen = 1000

// InputTooLong is returned by Greet when the name exceeds MaxNameLen.
const InputTooLong = "Error: Input too long"

const overflowDiagnostic = "Integer overflow occurred"

// Add returns a + b, or 0 when the sum does not fit in an int32.
// Overflow in either direction collapses to 0; the only trace is a
// diagnostic on the configured sink.
func Add(a, b int32) int32 {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		diag.Emit(overflowDiagnostic)
		return 0
	}
	return int32(sum)
}

// Greet formats a greeting for name. The name is interpolated verbatim;
// only its byte length is checked.
func Greet(name string) string {
	if len(name) > MaxNameLen {
		return InputTooLong
	}
	return fmt.Sprintf("Hello, %s!", name)
}

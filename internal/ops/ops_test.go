package ops

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/fadumoaideed/swiftreader/internal/diag"
	"github.com/stretchr/testify/require"
)

// recordSink captures diagnostics for assertions.
type recordSink struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordSink) Diagnostic(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordSink) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func installRecordSink(t *testing.T) *recordSink {
	t.Helper()
	sink := &recordSink{}
	diag.SetSink(sink)
	t.Cleanup(func() { diag.SetSink(nil) })
	return sink
}

func TestAdd(t *testing.T) {
	sink := installRecordSink(t)

	require.Equal(t, int32(5), Add(2, 3))
	require.Equal(t, int32(0), Add(0, 0))
	require.Equal(t, int32(-1), Add(math.MaxInt32, math.MinInt32))
	require.Equal(t, int32(math.MaxInt32), Add(math.MaxInt32, 0))
	require.Equal(t, int32(math.MinInt32), Add(math.MinInt32, 0))
	require.Empty(t, sink.all())
}

func TestAddPositiveOverflow(t *testing.T) {
	sink := installRecordSink(t)

	require.Equal(t, int32(0), Add(math.MaxInt32, 1))
	require.Equal(t, []string{"Integer overflow occurred"}, sink.all())
}

func TestAddNegativeOverflow(t *testing.T) {
	sink := installRecordSink(t)

	require.Equal(t, int32(0), Add(math.MinInt32, -1))
	require.Equal(t, []string{"Integer overflow occurred"}, sink.all())
}

func TestAddOverflowDoesNotAffectLaterCalls(t *testing.T) {
	installRecordSink(t)

	require.Equal(t, int32(0), Add(math.MaxInt32, math.MaxInt32))
	require.Equal(t, int32(7), Add(3, 4))
}

func TestGreet(t *testing.T) {
	require.Equal(t, "Hello, World!", Greet("World"))
	require.Equal(t, "Hello, !", Greet(""))
}

func TestGreetInterpolatesVerbatim(t *testing.T) {
	// no sanitization of formatting or control characters
	require.Equal(t, "Hello, %s\n<b>!", Greet("%s\n<b>"))
}

func TestGreetLengthBoundary(t *testing.T) {
	atCap := strings.Repeat("x", MaxNameLen)
	require.Equal(t, "Hello, "+atCap+"!", Greet(atCap))

	overCap := strings.Repeat("x", MaxNameLen+1)
	require.Equal(t, InputTooLong, Greet(overCap))
}

func TestGreetLengthIsMeasuredInBytes(t *testing.T) {
	// 334 three-byte runes are 1002 bytes, over the cap despite
	// being only 334 characters
	name := strings.Repeat("世", 334)
	require.Equal(t, InputTooLong, Greet(name))

	// 333 runes are 999 bytes, under the cap
	name = strings.Repeat("世", 333)
	require.Equal(t, "Hello, "+name+"!", Greet(name))
}

func TestConcurrentCalls(t *testing.T) {
	installRecordSink(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			require.Equal(t, n+n, Add(n, n))
			require.Equal(t, "Hello, World!", Greet("World"))
			Add(math.MaxInt32, 1)
		}(int32(i))
	}
	wg.Wait()
}

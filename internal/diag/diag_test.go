package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetSinkReceivesEmits(t *testing.T) {
	var got []string
	SetSink(SinkFunc(func(msg string) {
		got = append(got, msg)
	}))
	t.Cleanup(func() { SetSink(nil) })

	Emit("first")
	Emit("second")
	require.Equal(t, []string{"first", "second"}, got)
}

func TestNilSinkSilencesEmit(t *testing.T) {
	SetSink(nil)
	// must not panic
	Emit("dropped")
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetSink(NewZapSink(zap.New(core)))
	t.Cleanup(func() { SetSink(nil) })

	Emit("Integer overflow occurred")
	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "Integer overflow occurred", entries[0].Message)
}

package host

import (
	"bytes"
	"io"

	"github.com/fadumoaideed/swiftreader/internal/diag"
)

// SinkWriter returns a writer that forwards each line written to it to s
// as one diagnostic. The guest writes its diagnostics to stderr one per
// line; wiring this as the guest's stderr makes them observable on the
// host's sink.
func SinkWriter(s diag.Sink) io.Writer {
	return &sinkWriter{sink: s}
}

type sinkWriter struct {
	sink diag.Sink
	buf  bytes.Buffer
}

func (w *sinkWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// incomplete line, keep it buffered
			w.buf.WriteString(line)
			break
		}
		w.sink.Diagnostic(line[:len(line)-1])
	}
	return len(p), nil
}

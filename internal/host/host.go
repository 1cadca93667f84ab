// Package host embeds the swiftreader guest module and exposes its
// exports as plain Go calls. It drives the wasip1 build of the guest
// (wasm/wasip1) through wazero; the arithmetic export is callable
// directly, the string export goes through guest memory.
package host

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Export names of the guest module.
const (
	exportAdd      = "add"
	exportGreet    = "greet"
	exportAllocate = "allocate"
)

// Module is an instantiated guest. It is not safe for concurrent use;
// calls share the guest's scratch allocation.
type Module struct {
	runtime wazero.Runtime
	module  api.Module
}

type options struct {
	stderr io.Writer
	stdout io.Writer
}

// Option configures module instantiation.
type Option func(*options)

// WithStderr routes the guest's stderr, which carries its diagnostic
// messages, to w.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithStdout routes the guest's stdout to w.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// New compiles and instantiates a guest from its binary encoding.
func New(ctx context.Context, wasm []byte, opts ...Option) (*Module, error) {
	o := options{stderr: os.Stderr, stdout: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}

	r := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	cfg := wazero.NewModuleConfig().
		WithStdout(o.stdout).
		WithStderr(o.stderr).
		WithStartFunctions("_initialize")
	mod, err := r.InstantiateWithConfig(ctx, wasm, cfg)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiating guest: %w", err)
	}
	return &Module{runtime: r, module: mod}, nil
}

// Load reads a guest binary from path and instantiates it.
func Load(ctx context.Context, path string, opts ...Option) (*Module, error) {
	wasm, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading guest module: %w", err)
	}
	return New(ctx, wasm, opts...)
}

// Close releases the underlying runtime and all guest resources.
func (m *Module) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}

// Add calls the guest's add export. Overflow handling happens inside the
// guest: it returns 0 and writes a diagnostic to its stderr.
func (m *Module) Add(ctx context.Context, a, b int32) (int32, error) {
	fn := m.module.ExportedFunction(exportAdd)
	if fn == nil {
		return 0, fmt.Errorf("guest does not export %q", exportAdd)
	}
	results, err := fn.Call(ctx, api.EncodeI32(a), api.EncodeI32(b))
	if err != nil {
		return 0, fmt.Errorf("calling %s: %w", exportAdd, err)
	}
	return api.DecodeI32(results[0]), nil
}

// Greet copies name into guest memory, calls the greet export and reads
// the result string back out.
func (m *Module) Greet(ctx context.Context, name string) (string, error) {
	alloc := m.module.ExportedFunction(exportAllocate)
	greet := m.module.ExportedFunction(exportGreet)
	if alloc == nil || greet == nil {
		return "", fmt.Errorf("guest does not export %q and %q", exportAllocate, exportGreet)
	}

	var ptr uint32
	if len(name) > 0 {
		results, err := alloc.Call(ctx, uint64(len(name)))
		if err != nil {
			return "", fmt.Errorf("calling %s: %w", exportAllocate, err)
		}
		ptr = uint32(results[0])
		if !m.module.Memory().Write(ptr, []byte(name)) {
			return "", fmt.Errorf("writing %d bytes at %d is out of range of guest memory", len(name), ptr)
		}
	}

	results, err := greet.Call(ctx, uint64(ptr), uint64(len(name)))
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", exportGreet, err)
	}
	outPtr, outLen := UnpackResult(results[0])
	out, ok := m.module.Memory().Read(outPtr, outLen)
	if !ok {
		return "", fmt.Errorf("reading %d bytes at %d is out of range of guest memory", outLen, outPtr)
	}
	return string(out), nil
}

// PackResult packs a guest memory region into the uint64 the greet export
// returns: pointer in the high 32 bits, byte length in the low 32.
func PackResult(ptr, n uint32) uint64 {
	return uint64(ptr)<<32 | uint64(n)
}

// UnpackResult splits a packed guest result into pointer and byte length.
func UnpackResult(v uint64) (ptr, n uint32) {
	return uint32(v >> 32), uint32(v)
}

//go:build wasip1

package main

import (
	"os"
	"unsafe"

	"github.com/fadumoaideed/swiftreader/internal/diag"
	"github.com/fadumoaideed/swiftreader/internal/ops"
)

// Buffers handed across the boundary stay referenced here so the GC does
// not reclaim them while the host still holds their addresses. The Go
// GC does not move objects, so the addresses stay valid.
var (
	inBuf  []byte
	outBuf []byte
)

func init() {
	// diagnostics go to stderr, where the embedding host reads them
	diag.SetSink(diag.SinkFunc(func(msg string) {
		os.Stderr.WriteString(msg + "\n")
	}))
}

// main is required for the wasip1 target even though the module is built
// as a reactor and main is never run.
func main() {}

//go:wasmexport add
func add(a, b int32) int32 {
	return ops.Add(a, b)
}

// allocate reserves size bytes of guest memory for the host to write the
// next greet argument into. The region stays valid until the next
// allocate call.
//
//go:wasmexport allocate
func allocate(size uint32) uint32 {
	inBuf = make([]byte, size)
	if size == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(&inBuf[0])))
}

// greet reads size bytes of name at ptr and returns the greeting as a
// packed pointer and length (pointer in the high 32 bits). The result
// region stays valid until the next greet call.
//
//go:wasmexport greet
func greet(ptr, size uint32) uint64 {
	var name string
	if size > 0 {
		name = string(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), size))
	}
	outBuf = []byte(ops.Greet(name))
	return uint64(uint32(uintptr(unsafe.Pointer(&outBuf[0]))))<<32 | uint64(uint32(len(outBuf)))
}

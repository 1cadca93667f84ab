//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/fadumoaideed/swiftreader/internal/diag"
	"github.com/fadumoaideed/swiftreader/internal/ops"
)

// wrapper to make Add visible from JavaScript
// param 1: first addend
// param 2: second addend
// returns the sum, or 0 on overflow (a diagnostic is written to the
// browser console)
func addWrapper() js.Func {
	jsf := js.FuncOf(func(this js.Value, args []js.Value) any {
		a := int32(args[0].Int())
		b := int32(args[1].Int())
		return ops.Add(a, b)
	})
	return jsf
}

// wrapper to make Greet visible from JavaScript
// param 1: the name to greet
func greetWrapper() js.Func {
	jsf := js.FuncOf(func(this js.Value, args []js.Value) any {
		return ops.Greet(args[0].String())
	})
	return jsf
}

func main() {

	// diagnostics go to the browser console
	console := js.Global().Get("console")
	diag.SetSink(diag.SinkFunc(func(msg string) {
		console.Call("error", msg)
	}))

	// "publish" the functions in JavaScript
	js.Global().Set("add", addWrapper())
	js.Global().Set("greet", greetWrapper())

	// prevent WASM from terminating
	<-make(chan bool)

}

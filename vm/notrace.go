//go:build !trace

package vm

// traceBefore is a no-op in ordinary builds; the instrumented
// implementation lives in trace.go behind the `trace` build tag.
func (vm *VM) traceBefore(opcodeOffset int) {}

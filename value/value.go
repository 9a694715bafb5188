// Package value defines the runtime Value representation shared by the
// compiler's constant pool and the VM's operand stack.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"nilan/heap"
)

// Kind tags which field of a Value is live.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

// Value is a small tagged union: Number(f64), Bool(bool), Nil, String(ref).
// Kept as a concrete struct (not `any`) to keep the representation compact
// and avoid per-value boxing/allocation.
type Value struct {
	Kind Kind
	Num  float64
	Bool bool
	Str  heap.StringRef
}

// Nil is the singleton nil value.
var Nil = Value{Kind: KindNil}

// Number constructs a Number value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// String constructs a String value from a heap reference.
func String(ref heap.StringRef) Value { return Value{Kind: KindString, Str: ref} }

// IsFalsey reports whether v is Nil or Bool(false); every other value,
// including Number(0.0) and String(""), is truthy.
func (v Value) IsFalsey() bool {
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return !v.Bool
	default:
		return false
	}
}

// Equal implements the language's structural equality: same-variant content
// equality for Number/Bool/String (by dereferenced content via h), Nil ==
// Nil; any other pairing (including cross-type) is false. NaN == NaN is
// false, matching IEEE-754.
func Equal(a, b Value, h *heap.Heap) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Num == b.Num
	case KindString:
		if a.Str == b.Str {
			return true
		}
		return h.Deref(a.Str) == h.Deref(b.Str)
	default:
		return false
	}
}

// Display renders v in the canonical debug form the REPL and script
// runner print: Number/Bool/Nil are tagged by variant (matching the
// original Rust implementation's derived Debug output, e.g. "Number(7.0)",
// "Bool(true)", "Nil"), while strings print their bare dereferenced
// content with no variant tag or quotes.
func (v Value) Display(h *heap.Heap) string {
	switch v.Kind {
	case KindNil:
		return "Nil"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.Bool)
	case KindNumber:
		return fmt.Sprintf("Number(%s)", formatNumber(v.Num))
	case KindString:
		return h.Deref(v.Str)
	default:
		return fmt.Sprintf("<invalid value kind %d>", v.Kind)
	}
}

// formatNumber renders n the way Rust's f64 Debug impl would: "inf"/"-inf"/
// "NaN" for the non-finite cases (reachable via x/0.0, per spec §4.4),
// exponent form ("1e16", "1.5e-7") for nonzero magnitudes below 1e-4 or at
// least 1e16, and otherwise plain decimal with at least one digit after the
// decimal point.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	if abs := math.Abs(n); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
		e, _ := strconv.Atoi(exponent)
		return mantissa + "e" + strconv.Itoa(e)
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"nilan/heap"
	"nilan/value"
)

func TestIsFalsey(t *testing.T) {
	assert.True(t, value.Nil.IsFalsey())
	assert.True(t, value.Bool(false).IsFalsey())
	assert.False(t, value.Bool(true).IsFalsey())
	assert.False(t, value.Number(0).IsFalsey(), "0 is truthy")
	assert.False(t, value.Number(1).IsFalsey())
}

func TestEqualSameKind(t *testing.T) {
	h := heap.New()
	assert.True(t, value.Equal(value.Nil, value.Nil, h))
	assert.True(t, value.Equal(value.Number(1), value.Number(1), h))
	assert.False(t, value.Equal(value.Number(1), value.Number(2), h))
	assert.True(t, value.Equal(value.Bool(true), value.Bool(true), h))
}

func TestEqualCrossKindIsFalse(t *testing.T) {
	h := heap.New()
	assert.False(t, value.Equal(value.Number(0), value.Bool(false), h))
	assert.False(t, value.Equal(value.Nil, value.Bool(false), h))
}

func TestEqualNaNIsNeverEqual(t *testing.T) {
	h := heap.New()
	nan := value.Number(math.NaN())
	assert.False(t, value.Equal(nan, nan, h))
}

func TestEqualStringByContent(t *testing.T) {
	h := heap.New()
	a := value.String(h.AllocString("hi"))
	b := value.String(h.AllocString("hi"))
	assert.True(t, value.Equal(a, b, h))
}

func TestDisplay(t *testing.T) {
	h := heap.New()
	assert.Equal(t, "Nil", value.Nil.Display(h))
	assert.Equal(t, "Bool(true)", value.Bool(true).Display(h))
	assert.Equal(t, "Number(1.5)", value.Number(1.5).Display(h))
	assert.Equal(t, "Number(7.0)", value.Number(7).Display(h))
	assert.Equal(t, "hello", value.String(h.AllocString("hello")).Display(h))
}

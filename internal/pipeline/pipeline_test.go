package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addOne(x int) int    { return x + 1 }
func double(x int) int    { return x * 2 }
func toString(x int) string { return string(rune('A' + x%26)) }

// TestSequentialPipeline_Associativity covers testable property #8: a
// pipeline [A, B, C] and a pipeline [A, (pipeline [B, C])] produce the same
// final output for the same input.
func TestSequentialPipeline_Associativity(t *testing.T) {
	a := NewFunctionStage(addOne)
	b := NewFunctionStage(double)
	c := NewFunctionStage(addOne)

	flat := NewSequential[int, int](a)
	flat, err := AddStage[int, int, int](flat, b)
	require.NoError(t, err)
	flat, err = AddStage[int, int, int](flat, c)
	require.NoError(t, err)
	flat, err = Complete(flat)
	require.NoError(t, err)

	flatOut, err := flat.Run(3)
	require.NoError(t, err)

	a2 := NewFunctionStage(addOne)
	b2 := NewFunctionStage(double)
	c2 := NewFunctionStage(addOne)

	inner := NewSequential[int, int](b2)
	inner, err = AddStage[int, int, int](inner, c2)
	require.NoError(t, err)
	inner, err = Complete(inner)
	require.NoError(t, err)

	nested := NewSequential[int, int](a2)
	nested, err = AddStage[int, int, int](nested, inner)
	require.NoError(t, err)
	nested, err = Complete(nested)
	require.NoError(t, err)

	nestedOut, err := nested.Run(3)
	require.NoError(t, err)

	assert.Equal(t, flatOut, nestedOut)
}

// TestModifyingPipeline_Idempotence covers testable property #9: if every
// registered stage is a no-op, Run(x) = x.
func TestModifyingPipeline_Idempotence(t *testing.T) {
	noop := NewFunctionModifyingStage(func(x *int) {})

	p := NewModifyingPipeline[int]()
	p, err := p.AddStage(noop)
	require.NoError(t, err)
	p, err = p.AddStage(NewFunctionModifyingStage(func(x *int) {}))
	require.NoError(t, err)
	p, err = p.Complete()
	require.NoError(t, err)

	x := 42
	require.NoError(t, p.Run(&x))
	assert.Equal(t, 42, x)
}

// TestSequentialPipeline_NotReadyAndAlreadyReady covers the
// PipelineNotReady/PipelineAlreadyReady error kinds.
func TestSequentialPipeline_NotReadyAndAlreadyReady(t *testing.T) {
	stage := NewFunctionStage(addOne)
	p := NewSequential[int, int](stage)

	_, err := p.Run(1)
	require.Error(t, err)

	p, err = Complete(p)
	require.NoError(t, err)

	out, err := p.Run(1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)

	_, err = Complete(p)
	require.Error(t, err)

	_, err = AddStage[int, int, int](p, NewFunctionStage(addOne))
	require.Error(t, err)
}

// TestPipelineNested reproduces the "Pipeline-nested" end-to-end scenario:
// an outer sequential pipeline int -> float64 whose middle stage is a
// ModifyingPipeline[int] and whose first stage is itself an inner
// sequential pipeline int -> string -> int, all built from mocked stages
// producing fixed outputs.
func TestPipelineNested(t *testing.T) {
	toChar := NewFunctionStage(toString)
	backToInt := NewFunctionStage(func(s string) int { return int(s[0]) })

	inner := NewSequential[int, string](toChar)
	inner, err := AddStage[int, string, int](inner, backToInt)
	require.NoError(t, err)
	inner, err = Complete(inner)
	require.NoError(t, err)

	modifying := NewModifyingPipeline[int]()
	modifying, err = modifying.AddStage(NewFunctionModifyingStage(func(x *int) { *x = *x + 0 }))
	require.NoError(t, err)
	modifying, err = modifying.Complete()
	require.NoError(t, err)

	// An executor wires a ModifyingPipeline into a SequentialPipeline's
	// int -> int slot by running it against a local copy of the resource.
	middle := NewFunctionStage(func(x int) int {
		v := x
		require.NoError(t, modifying.Run(&v))
		return v
	})

	final := NewFunctionStage(func(x int) float64 { return float64(x) * 2.0 })

	outer := NewSequential[int, int](inner)
	outerMid, err := AddStage[int, int, int](outer, middle)
	require.NoError(t, err)
	outerFinal, err := AddStage[int, int, float64](outerMid, final)
	require.NoError(t, err)
	outerFinal, err = Complete(outerFinal)
	require.NoError(t, err)

	out, err := outerFinal.Run(5)
	require.NoError(t, err)

	expectedChar := toString(5)
	expectedInt := int(expectedChar[0])
	expected := float64(expectedInt) * 2.0
	assert.Equal(t, expected, out)
}

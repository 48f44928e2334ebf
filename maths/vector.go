package maths

import (
	"fmt"
	"strings"
)

// Vector is a dense one-dimensional array of scalars. Element coefficient
// vectors (u0, the constant column) and the whole-circuit u0 concatenation
// are both small and dense in practice, so a single slice-backed
// implementation covers every use in this module.
type Vector[T Number] interface {
	Length() int
	Get(i int) T
	Set(i int, v T)
	Increment(i int, v T)
	ToDense() []T
	NonZeroCount() int
	String() string
}

type denseVector[T Number] struct {
	data []T
}

// NewVector creates a zero vector of the given length.
func NewVector[T Number](length int) Vector[T] {
	return &denseVector[T]{data: make([]T, length)}
}

// NewVectorFromSlice wraps an existing slice without copying.
func NewVectorFromSlice[T Number](data []T) Vector[T] {
	return &denseVector[T]{data: data}
}

func (v *denseVector[T]) Length() int { return len(v.data) }

func (v *denseVector[T]) Get(i int) T {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("maths: vector index %d out of range [0,%d)", i, len(v.data)))
	}
	return v.data[i]
}

func (v *denseVector[T]) Set(i int, val T) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("maths: vector index %d out of range [0,%d)", i, len(v.data)))
	}
	v.data[i] = val
}

func (v *denseVector[T]) Increment(i int, val T) {
	v.Set(i, v.Get(i)+val)
}

func (v *denseVector[T]) ToDense() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

func (v *denseVector[T]) NonZeroCount() int {
	n := 0
	for _, x := range v.data {
		if !isZero(x) {
			n++
		}
	}
	return n
}

func (v *denseVector[T]) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// VStack vertically concatenates vectors in order, e.g. stacking a
// circuit's per-element u0 vectors into the whole-circuit u0.
func VStack[T Number](vs ...Vector[T]) Vector[T] {
	total := 0
	for _, v := range vs {
		total += v.Length()
	}
	out := make([]T, 0, total)
	for _, v := range vs {
		out = append(out, v.ToDense()...)
	}
	return NewVectorFromSlice(out)
}

// File: tensor.go
// Title: Numeric Tensor Implementation
// Description: Implements an n-dimensional numeric array with element-wise
//              arithmetic, matrix multiplication, transposition, and summary
//              statistics. Self-contained; not used by the language pipeline.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial tensor implementation

package tensor

import (
	"fmt"
	"math"

	puterror "github.com/msto63/put/core/error"
)

// Tensor represents an n-dimensional array of float64 values stored in
// row-major order
type Tensor struct {
	data  []float64
	shape []int
}

// New creates a tensor from a flat buffer and a shape. The buffer length
// must equal the product of the shape dimensions; a mismatch is a
// programmer error and panics.
func New(data []float64, shape []int) *Tensor {
	if len(data) != size(shape) {
		panic(fmt.Sprintf("tensor: data length %d does not match shape %v (size %d)",
			len(data), shape, size(shape)))
	}
	return &Tensor{data: data, shape: shape}
}

// Zeros creates a zero-filled tensor with the given shape
func Zeros(shape []int) *Tensor {
	return &Tensor{
		data:  make([]float64, size(shape)),
		shape: shape,
	}
}

// size returns the number of elements implied by a shape
func size(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}

// Shape returns a copy of the tensor's shape
func (t *Tensor) Shape() []int {
	shape := make([]int, len(t.shape))
	copy(shape, t.shape)
	return shape
}

// Data returns a copy of the tensor's flat data buffer
func (t *Tensor) Data() []float64 {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return data
}

// Len returns the number of elements in the tensor
func (t *Tensor) Len() int {
	return len(t.data)
}

// Get returns the element at the given multi-index
func (t *Tensor) Get(indices ...int) (float64, error) {
	index, err := t.computeIndex(indices)
	if err != nil {
		return 0, err
	}
	return t.data[index], nil
}

// Set assigns the element at the given multi-index
func (t *Tensor) Set(value float64, indices ...int) error {
	index, err := t.computeIndex(indices)
	if err != nil {
		return err
	}
	t.data[index] = value
	return nil
}

// computeIndex maps a multi-index to a flat row-major offset
func (t *Tensor) computeIndex(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, puterror.New(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices))).
			WithCode(puterror.CodeTensorIndex).
			WithOperation("tensor.computeIndex")
	}

	index := 0
	multiplier := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		if indices[i] < 0 || indices[i] >= t.shape[i] {
			return 0, puterror.New(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)",
				indices[i], i, t.shape[i])).
				WithCode(puterror.CodeTensorIndex).
				WithOperation("tensor.computeIndex")
		}
		index += indices[i] * multiplier
		multiplier *= t.shape[i]
	}

	return index, nil
}

// sameShape reports whether two tensors have identical shapes
func (t *Tensor) sameShape(other *Tensor) bool {
	if len(t.shape) != len(other.shape) {
		return false
	}
	for i, dim := range t.shape {
		if other.shape[i] != dim {
			return false
		}
	}
	return true
}

// shapeMismatch builds the failure value for incompatible shapes
func shapeMismatch(op string, a, b *Tensor) error {
	return puterror.New(fmt.Sprintf("shape mismatch: %v vs %v", a.shape, b.shape)).
		WithCode(puterror.CodeTensorShape).
		WithOperation(op)
}

// elementwise applies a binary function to matching elements
func (t *Tensor) elementwise(other *Tensor, op string, fn func(a, b float64) float64) (*Tensor, error) {
	if !t.sameShape(other) {
		return nil, shapeMismatch(op, t, other)
	}

	data := make([]float64, len(t.data))
	for i := range t.data {
		data[i] = fn(t.data[i], other.data[i])
	}
	return New(data, t.Shape()), nil
}

// Add returns the element-wise sum of two tensors
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, "tensor.Add", func(a, b float64) float64 { return a + b })
}

// Subtract returns the element-wise difference of two tensors
func (t *Tensor) Subtract(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, "tensor.Subtract", func(a, b float64) float64 { return a - b })
}

// Multiply returns the element-wise product of two tensors
func (t *Tensor) Multiply(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, "tensor.Multiply", func(a, b float64) float64 { return a * b })
}

// Divide returns the element-wise quotient of two tensors
func (t *Tensor) Divide(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, "tensor.Divide", func(a, b float64) float64 { return a / b })
}

// MatMul performs 2D matrix multiplication. The left tensor must be
// (m, n) and the right (n, p); the result is (m, p).
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, puterror.New("matrix multiplication requires 2D tensors").
			WithCode(puterror.CodeTensorShape).
			WithOperation("tensor.MatMul").
			WithDetail("leftShape", t.shape).
			WithDetail("rightShape", other.shape)
	}
	if t.shape[1] != other.shape[0] {
		return nil, shapeMismatch("tensor.MatMul", t, other)
	}

	m, n, p := t.shape[0], t.shape[1], other.shape[1]
	result := Zeros([]int{m, p})

	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += t.data[i*n+k] * other.data[k*p+j]
			}
			result.data[i*p+j] = sum
		}
	}

	return result, nil
}

// Transpose returns the transpose of a 2D tensor
func (t *Tensor) Transpose() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, puterror.New("transpose requires a 2D tensor").
			WithCode(puterror.CodeTensorShape).
			WithOperation("tensor.Transpose").
			WithDetail("shape", t.shape)
	}

	rows, cols := t.shape[0], t.shape[1]
	result := Zeros([]int{cols, rows})

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.data[j*rows+i] = t.data[i*cols+j]
		}
	}

	return result, nil
}

// apply maps a unary function over all elements
func (t *Tensor) apply(fn func(float64) float64) *Tensor {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = fn(v)
	}
	return New(data, t.Shape())
}

// Exp returns e raised to each element
func (t *Tensor) Exp() *Tensor {
	return t.apply(math.Exp)
}

// Log returns the natural logarithm of each element
func (t *Tensor) Log() *Tensor {
	return t.apply(math.Log)
}

// Mean returns the arithmetic mean of all elements
func (t *Tensor) Mean() float64 {
	if len(t.data) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range t.data {
		sum += v
	}
	return sum / float64(len(t.data))
}

// Variance returns the population variance of all elements
func (t *Tensor) Variance() float64 {
	if len(t.data) == 0 {
		return 0
	}

	mean := t.Mean()
	sum := 0.0
	for _, v := range t.data {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(t.data))
}

// StdDev returns the population standard deviation of all elements
func (t *Tensor) StdDev() float64 {
	return math.Sqrt(t.Variance())
}

// Clone returns a deep copy of the tensor
func (t *Tensor) Clone() *Tensor {
	return New(t.Data(), t.Shape())
}

// Equal reports whether two tensors have identical shape and data
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.sameShape(other) {
		return false
	}
	for i, v := range t.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String returns a readable representation of the tensor
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v, data=%v)", t.shape, t.data)
}

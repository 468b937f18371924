// File: tensor_test.go
// Title: Tensor Tests
// Description: Tests for tensor construction, indexing, arithmetic, and
//              statistics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation

package tensor

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tensor := New([]float64{1, 2, 3, 4}, []int{2, 2})

	if got := tensor.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}

	shape := tensor.Shape()
	if len(shape) != 2 || shape[0] != 2 || shape[1] != 2 {
		t.Errorf("Shape() = %v, want [2 2]", shape)
	}
}

func TestNewPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with mismatched buffer should panic")
		}
	}()

	New([]float64{1, 2, 3}, []int{2, 2})
}

func TestZeros(t *testing.T) {
	tensor := Zeros([]int{2, 3})

	if got := tensor.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
	for _, v := range tensor.Data() {
		if v != 0 {
			t.Errorf("Zeros() contains %v, want all zeros", v)
		}
	}
}

func TestGet(t *testing.T) {
	tensor := New([]float64{1, 2, 3, 4}, []int{2, 2})

	tests := []struct {
		name    string
		indices []int
		want    float64
		wantErr bool
	}{
		{"first element", []int{0, 0}, 1, false},
		{"last element", []int{1, 1}, 4, false},
		{"row major order", []int{0, 1}, 2, false},
		{"out of bounds", []int{2, 0}, 0, true},
		{"negative index", []int{-1, 0}, 0, true},
		{"wrong arity", []int{0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tensor.Get(tt.indices...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%v) error = %v, wantErr %v", tt.indices, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Get(%v) = %v, want %v", tt.indices, got, tt.want)
			}
		})
	}
}

func TestSet(t *testing.T) {
	tensor := New([]float64{1, 2, 3, 4}, []int{2, 2})

	if err := tensor.Set(5, 0, 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := tensor.Get(0, 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 5 {
		t.Errorf("Get() after Set() = %v, want 5", got)
	}

	if err := tensor.Set(6, 2, 0); err == nil {
		t.Error("Set() out of bounds should fail")
	}
}

func TestElementwiseOperations(t *testing.T) {
	t1 := New([]float64{1, 2, 3, 4}, []int{2, 2})
	t2 := New([]float64{5, 6, 7, 8}, []int{2, 2})

	tests := []struct {
		name string
		op   func(*Tensor, *Tensor) (*Tensor, error)
		want []float64
	}{
		{"add", (*Tensor).Add, []float64{6, 8, 10, 12}},
		{"subtract", (*Tensor).Subtract, []float64{-4, -4, -4, -4}},
		{"multiply", (*Tensor).Multiply, []float64{5, 12, 21, 32}},
		{"divide", (*Tensor).Divide, []float64{0.2, 2.0 / 6.0, 3.0 / 7.0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op(t1, t2)
			if err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			for i, want := range tt.want {
				if got := result.Data()[i]; math.Abs(got-want) > 1e-12 {
					t.Errorf("%s element %d = %v, want %v", tt.name, i, got, want)
				}
			}
		})
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	t1 := New([]float64{1, 2, 3, 4}, []int{2, 2})
	t2 := New([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3})

	if _, err := t1.Add(t2); err == nil {
		t.Error("Add() with mismatched shapes should fail")
	}
	if _, err := t1.Multiply(t2); err == nil {
		t.Error("Multiply() with mismatched shapes should fail")
	}
}

func TestMatMul(t *testing.T) {
	t1 := New([]float64{1, 2, 3, 4}, []int{2, 2})
	t2 := New([]float64{5, 6, 7, 8}, []int{2, 2})

	result, err := t1.MatMul(t2)
	if err != nil {
		t.Fatalf("MatMul() error = %v", err)
	}

	want := []float64{19, 22, 43, 50}
	for i, w := range want {
		if got := result.Data()[i]; got != w {
			t.Errorf("MatMul() element %d = %v, want %v", i, got, w)
		}
	}
}

func TestMatMulRectangular(t *testing.T) {
	// (2x3) @ (3x2) -> (2x2)
	t1 := New([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	t2 := New([]float64{7, 8, 9, 10, 11, 12}, []int{3, 2})

	result, err := t1.MatMul(t2)
	if err != nil {
		t.Fatalf("MatMul() error = %v", err)
	}

	shape := result.Shape()
	if shape[0] != 2 || shape[1] != 2 {
		t.Fatalf("MatMul() shape = %v, want [2 2]", shape)
	}

	want := []float64{58, 64, 139, 154}
	for i, w := range want {
		if got := result.Data()[i]; got != w {
			t.Errorf("MatMul() element %d = %v, want %v", i, got, w)
		}
	}
}

func TestMatMulInvalidShapes(t *testing.T) {
	t1 := New([]float64{1, 2, 3, 4}, []int{2, 2})
	t2 := New([]float64{1, 2, 3, 4, 5, 6}, []int{3, 2})
	t3 := New([]float64{1, 2, 3}, []int{3})

	if _, err := t1.MatMul(t2); err == nil {
		t.Error("MatMul() with incompatible inner dimensions should fail")
	}
	if _, err := t1.MatMul(t3); err == nil {
		t.Error("MatMul() with non-2D operand should fail")
	}
}

func TestTranspose(t *testing.T) {
	tensor := New([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3})

	result, err := tensor.Transpose()
	if err != nil {
		t.Fatalf("Transpose() error = %v", err)
	}

	shape := result.Shape()
	if shape[0] != 3 || shape[1] != 2 {
		t.Fatalf("Transpose() shape = %v, want [3 2]", shape)
	}

	want := []float64{1, 4, 2, 5, 3, 6}
	for i, w := range want {
		if got := result.Data()[i]; got != w {
			t.Errorf("Transpose() element %d = %v, want %v", i, got, w)
		}
	}
}

func TestTransposeNon2D(t *testing.T) {
	tensor := New([]float64{1, 2, 3}, []int{3})

	if _, err := tensor.Transpose(); err == nil {
		t.Error("Transpose() on 1D tensor should fail")
	}
}

func TestExpAndLog(t *testing.T) {
	tensor := New([]float64{0, 1}, []int{2})

	exp := tensor.Exp()
	if got := exp.Data()[0]; got != 1 {
		t.Errorf("Exp() of 0 = %v, want 1", got)
	}
	if got := exp.Data()[1]; math.Abs(got-math.E) > 1e-12 {
		t.Errorf("Exp() of 1 = %v, want e", got)
	}

	roundTrip := exp.Log()
	for i, want := range tensor.Data() {
		if got := roundTrip.Data()[i]; math.Abs(got-want) > 1e-12 {
			t.Errorf("Log(Exp(x)) element %d = %v, want %v", i, got, want)
		}
	}
}

func TestStatistics(t *testing.T) {
	tensor := New([]float64{1, 2, 3, 4}, []int{2, 2})

	if got := tensor.Mean(); got != 2.5 {
		t.Errorf("Mean() = %v, want 2.5", got)
	}
	if got := tensor.Variance(); got != 1.25 {
		t.Errorf("Variance() = %v, want 1.25", got)
	}
	if got := tensor.StdDev(); math.Abs(got-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("StdDev() = %v, want sqrt(1.25)", got)
	}
}

func TestCloneAndEqual(t *testing.T) {
	original := New([]float64{1, 2, 3, 4}, []int{2, 2})
	clone := original.Clone()

	if !original.Equal(clone) {
		t.Error("Clone() should be equal to original")
	}

	if err := clone.Set(99, 0, 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if original.Equal(clone) {
		t.Error("mutating the clone should not affect the original")
	}

	if v, _ := original.Get(0, 0); v != 1 {
		t.Errorf("original mutated by clone write, element = %v", v)
	}
}

func TestString(t *testing.T) {
	tensor := New([]float64{1, 2}, []int{2})

	want := "Tensor(shape=[2], data=[1 2])"
	if got := tensor.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

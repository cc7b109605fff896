// Copyright 2025 The tinytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tinytorch/tinytorch/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for the Go types that mirror an element type.
// Supported types: float32, float64, int32, int64, bool.
type DType = tensor.DType

// Scalar is a constraint for source values accepted by New.
type Scalar = tensor.Scalar

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dtype-tagged, row-major array.
//
// Copies made with Clone or CopyFrom share the underlying Storage and hold
// their own shape and stride. Call Release when a tensor is no longer needed.
//
// Example:
//
//	a, _ := tensor.New([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.Float32)
//	b := a.Clone()  // Shares buffer with a
//	defer a.Release()
//	defer b.Release()
type Tensor = tensor.Tensor

// Storage is a fixed-size, reference-counted byte buffer shared by tensors.
type Storage = tensor.Storage

// DumpOption configures Dump output.
type DumpOption = tensor.DumpOption

// Errors
var (
	ErrShapeMismatch        = tensor.ErrShapeMismatch
	ErrInvalidShape         = tensor.ErrInvalidShape
	ErrEmptyTensor          = tensor.ErrEmptyTensor
	ErrUnsupportedDtype     = tensor.ErrUnsupportedDtype
	ErrUninitializedStorage = tensor.ErrUninitializedStorage
	ErrIndexOutOfRange      = tensor.ErrIndexOutOfRange
)

// Creation functions

// New creates a tensor from a flat slice, a shape and a data type.
// Each value is cast to the element type of dtype.
//
// Example:
//
//	x, err := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float32)
func New[T Scalar](data []T, shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.New(data, shape, dtype)
}

// NewEmpty always fails with ErrEmptyTensor.
func NewEmpty(dtype DataType) (*Tensor, error) {
	return tensor.NewEmpty(dtype)
}

// FromSlice creates a tensor from a Go slice, inferring the data type from T.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Zeros(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Ones(shape, dtype)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, 3.14, tensor.Float64)
func Full[T Scalar](shape Shape, value T, dtype DataType) (*Tensor, error) {
	return tensor.Full(shape, value, dtype)
}

// NewStorage allocates a standalone Storage of byteSize bytes.
func NewStorage(byteSize int) (*Storage, error) {
	return tensor.NewStorage(byteSize)
}

// Access functions

// At returns the element at the given indices, cast to T.
func At[T Scalar](t *Tensor, indices ...int) (T, error) {
	return tensor.At[T](t, indices...)
}

// Values returns every element in row-major order, cast to T.
func Values[T Scalar](t *Tensor) ([]T, error) {
	return tensor.Values[T](t)
}

// Display functions

// Dump converts a tensor to a human-readable string representation.
func Dump(t *Tensor, opts ...DumpOption) string {
	return tensor.Dump(t, opts...)
}

// DumpWithPrecision sets the number of decimal places printed for floats.
func DumpWithPrecision(n int) DumpOption {
	return tensor.DumpWithPrecision(n)
}

// DumpWithThreshold sets the element count above which Dump elides the middle of each dimension.
func DumpWithThreshold(n int) DumpOption {
	return tensor.DumpWithThreshold(n)
}

// DumpWithEdgeItems sets the number of elements kept at each end of an elided dimension.
func DumpWithEdgeItems(n int) DumpOption {
	return tensor.DumpWithEdgeItems(n)
}

// Repr returns the placeholder representation used by host bindings.
func Repr(*Tensor) string {
	return "<Tensor>"
}

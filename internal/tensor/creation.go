package tensor

import "unsafe"

// FromSlice creates a tensor from a Go slice, inferring the data type from T.
//
// Example:
//
//	t, err := tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3}) // Int64
func FromSlice[T DType](data []T, shape Shape) (*Tensor, error) {
	var dummy T
	return New(data, shape, inferDataType(dummy))
}

// Full creates a tensor of the given shape with every element set to value.
// Shapes too large to allocate fail with ErrInvalidShape.
//
// Example:
//
//	t, _ := tensor.Full(tensor.Shape{3, 3}, 3.14, tensor.Float32)
func Full[T Scalar](shape Shape, value T, dtype DataType) (*Tensor, error) {
	n, err := shape.checkedNumElements()
	if err != nil {
		return nil, err
	}
	size, err := dtype.ByteSize()
	if err != nil {
		return nil, err
	}
	if _, err := checkedByteSize(n, size); err != nil {
		return nil, err
	}
	if _, err := checkedByteSize(n, int(unsafe.Sizeof(value))); err != nil {
		return nil, err
	}
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return New(data, shape, dtype)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return Full(shape, 0, dtype)
}

// Ones creates a tensor filled with ones.
// For Bool tensors, one is true.
func Ones(shape Shape, dtype DataType) (*Tensor, error) {
	return Full(shape, 1, dtype)
}

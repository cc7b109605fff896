package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// An empty shape describes a scalar; a zero extent describes a tensor with no elements.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// checkedNumElements validates every extent and returns the element count,
// failing on negative extents and on overflow.
func (s Shape) checkedNumElements() (int, error) {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return 0, fmt.Errorf("dimension %d is %d (must be >= 0): %w", i, dim, ErrInvalidShape)
		}
		var err error
		if n, err = checkedMul(n, dim); err != nil {
			return 0, fmt.Errorf("shape %v: %w: %w", []int(s), ErrInvalidShape, err)
		}
	}
	return n, nil
}

// Validate checks if the shape is valid (all dimensions >= 0, no overflow).
func (s Shape) Validate() error {
	_, err := s.checkedNumElements()
	return err
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape. A nil shape stays nil.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// normalizeDim resolves a possibly negative axis index against rank.
func normalizeDim(dim, rank int) (int, error) {
	d := dim
	if d < 0 {
		d += rank
	}
	if d < 0 || d >= rank {
		return 0, fmt.Errorf("dimension %d for rank %d: %w", dim, rank, ErrIndexOutOfRange)
	}
	return d, nil
}

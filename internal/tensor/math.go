package tensor

import (
	"fmt"
	"math"
)

// maxAllocBytes is the largest buffer the runtime can allocate in one slice.
const maxAllocBytes = min(math.MaxInt, 1<<48)

// checkedMul multiplies a and b and checks for overflow.
// Both operands must be non-negative.
func checkedMul(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("multiplication overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedByteSize returns n elements of size bytes each, failing with
// ErrInvalidShape when the total cannot be allocated.
func checkedByteSize(n, size int) (int, error) {
	total, err := checkedMul(n, size)
	if err != nil {
		return 0, fmt.Errorf("%d elements of %d bytes: %w: %w", n, size, ErrInvalidShape, err)
	}
	if total > maxAllocBytes {
		return 0, fmt.Errorf("%d elements of %d bytes exceeds %d bytes: %w", n, size, maxAllocBytes, ErrInvalidShape)
	}
	return total, nil
}

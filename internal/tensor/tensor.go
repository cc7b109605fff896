package tensor

import "fmt"

// Tensor is a dtype-tagged, row-major array over a shared Storage.
//
// Shape and stride are owned by the tensor and never shared with other
// tensors or callers; the Storage may be shared through Clone or CopyFrom.
// A tensor left behind by MoveFrom or Move, or released via Release, is
// invalid: accessors report an empty shape and element access fails with
// ErrUninitializedStorage.
type Tensor struct {
	storage   *Storage // Shared reference-counted buffer
	shape     Shape    // Tensor dimensions
	stride    []int    // Memory strides (row-major)
	dtype     DataType // Runtime type information
	elemCount int
}

// New creates a Tensor from a flat slice of source values, a shape and a
// data type. Each value is cast to the element type of dtype.
//
// Validation happens before allocation, so a failed call never allocates:
//   - the shape must have non-negative extents (ErrInvalidShape)
//   - product(shape) must equal len(data) (ErrShapeMismatch)
//   - dtype must be supported (ErrUnsupportedDtype)
//
// The shape is copied; later changes to the caller's slice are not observed.
func New[T Scalar](data []T, shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	if n != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w", []int(shape), n, len(data), ErrShapeMismatch)
	}
	size, err := dtype.ByteSize()
	if err != nil {
		return nil, err
	}
	byteSize, err := checkedByteSize(n, size)
	if err != nil {
		return nil, err
	}

	storage, err := NewStorage(byteSize)
	if err != nil {
		return nil, err
	}
	t := &Tensor{
		storage:   storage,
		shape:     shape.Clone(),
		dtype:     dtype,
		elemCount: n,
	}
	if t.shape == nil {
		t.shape = Shape{}
	}
	t.setStride()

	if err := fill(t, data); err != nil {
		storage.Release()
		return nil, err
	}
	return t, nil
}

// NewEmpty always fails with ErrEmptyTensor: a tensor without data cannot exist.
func NewEmpty(dtype DataType) (*Tensor, error) {
	return nil, fmt.Errorf("dtype %s with no data: %w", dtype, ErrEmptyTensor)
}

func (t *Tensor) setStride() {
	t.stride = t.shape.ComputeStrides()
}

// fill casts every source value to the tensor's element type and stores it
// at byte offset i * size.
func fill[T Scalar](t *Tensor, data []T) error {
	if len(data) != t.elemCount {
		return fmt.Errorf("fill with %d values into %d elements: %w", len(data), t.elemCount, ErrShapeMismatch)
	}
	info, err := t.dtype.lookup()
	if err != nil {
		return err
	}
	buf := t.storage.bytes()
	if buf == nil {
		return ErrUninitializedStorage
	}
	for i, x := range data {
		off := i * info.size
		info.store(buf[off:off+info.size], toValue(x))
	}
	return nil
}

// Valid reports whether the tensor still owns a storage reference.
func (t *Tensor) Valid() bool {
	return t != nil && t.storage != nil
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.elemCount
}

// ByteSize returns the total memory size in bytes.
func (t *Tensor) ByteSize() int {
	if t.storage == nil {
		return 0
	}
	return t.storage.Len()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return t.shape.Rank()
}

// Shape returns a copy of the tensor's shape.
// Modifying the returned slice does not affect the tensor.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Size returns the full shape, same as Shape.
func (t *Tensor) Size() Shape {
	return t.Shape()
}

// SizeAt returns the extent along dim. A negative dim counts from the end,
// so SizeAt(-1) is the innermost extent.
func (t *Tensor) SizeAt(dim int) (int, error) {
	d, err := normalizeDim(dim, len(t.shape))
	if err != nil {
		return 0, err
	}
	return t.shape[d], nil
}

// Strides returns a copy of the tensor's memory strides.
func (t *Tensor) Strides() []int {
	if t.stride == nil {
		return nil
	}
	return append([]int{}, t.stride...)
}

// Storage returns the shared storage, or nil for an invalid tensor.
func (t *Tensor) Storage() *Storage {
	return t.storage
}

// Bytes returns a copy of the raw little-endian buffer.
func (t *Tensor) Bytes() ([]byte, error) {
	buf, err := t.buffer()
	if err != nil {
		return nil, err
	}
	return append([]byte{}, buf...), nil
}

// FillZeros overwrites every element with the zero value of its type.
func (t *Tensor) FillZeros() error {
	if t.storage == nil {
		return ErrUninitializedStorage
	}
	return t.storage.FillZeros()
}

func (t *Tensor) buffer() ([]byte, error) {
	if t.storage == nil {
		return nil, ErrUninitializedStorage
	}
	buf := t.storage.bytes()
	if buf == nil {
		return nil, ErrUninitializedStorage
	}
	return buf, nil
}

// Offset returns the flat element offset of the given indices.
func (t *Tensor) Offset(indices ...int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("expected %d indices, got %d: %w", len(t.shape), len(indices), ErrIndexOutOfRange)
	}

	// Calculate flat index using strides
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("index %d for dimension %d (size %d): %w", idx, i, t.shape[i], ErrIndexOutOfRange)
		}
		offset += idx * t.stride[i]
	}
	return offset, nil
}

// load reads the element at flat offset i.
func (t *Tensor) load(i int) (value, error) {
	buf, err := t.buffer()
	if err != nil {
		return value{}, err
	}
	info, err := t.dtype.lookup()
	if err != nil {
		return value{}, err
	}
	off := i * info.size
	return info.load(buf[off : off+info.size]), nil
}

// At returns the element at the given indices, cast to T.
//
// Example:
//
//	t, _ := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.Float32)
//	v, _ := tensor.At[float32](t, 1, 0) // 3
func At[T Scalar](t *Tensor, indices ...int) (T, error) {
	var zero T
	offset, err := t.Offset(indices...)
	if err != nil {
		return zero, err
	}
	v, err := t.load(offset)
	if err != nil {
		return zero, err
	}
	return fromValue[T](v), nil
}

// Values returns every element in row-major order, cast to T.
func Values[T Scalar](t *Tensor) ([]T, error) {
	buf, err := t.buffer()
	if err != nil {
		return nil, err
	}
	info, err := t.dtype.lookup()
	if err != nil {
		return nil, err
	}
	out := make([]T, t.elemCount)
	for i := range out {
		off := i * info.size
		out[i] = fromValue[T](info.load(buf[off : off+info.size]))
	}
	return out, nil
}

// String returns a short description of the tensor.
// It never reads the buffer.
func (t *Tensor) String() string {
	if !t.Valid() {
		return "Tensor(invalid)"
	}
	return fmt.Sprintf("Tensor[%s]%v stride=%v", t.dtype, []int(t.shape), t.stride)
}

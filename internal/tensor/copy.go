package tensor

// Clone returns a new tensor that shares this tensor's storage
// (its reference count is incremented) with its own copy of shape and stride.
//
// Example:
//
//	a, _ := tensor.New([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.Float32)
//	b := a.Clone()  // Shares buffer with a (just increments refCount)
//	b.Release()     // a still owns the buffer
func (t *Tensor) Clone() *Tensor {
	c := &Tensor{}
	c.CopyFrom(t)
	return c
}

// CopyFrom makes t a copy of src: t releases its own storage reference, then
// shares src's storage and takes independent copies of its shape and stride.
// Copying a tensor onto itself is a no-op; copying from nil releases t.
func (t *Tensor) CopyFrom(src *Tensor) {
	if t == src {
		return
	}
	t.Release()
	if src == nil {
		return
	}
	if src.storage != nil {
		src.storage.Retain()
	}
	t.storage = src.storage
	t.shape = src.shape.Clone()
	t.stride = nil
	if src.stride != nil {
		t.stride = append([]int{}, src.stride...)
	}
	t.dtype = src.dtype
	t.elemCount = src.elemCount
}

// MoveFrom transfers src's storage reference, shape and stride to t without
// copying them. t releases its own storage reference first. src is left
// invalid and must only be released or assigned to.
// Moving a tensor onto itself is a no-op; moving from nil releases t.
func (t *Tensor) MoveFrom(src *Tensor) {
	if t == src {
		return
	}
	t.Release()
	if src == nil {
		return
	}
	t.storage, src.storage = src.storage, nil
	t.shape, src.shape = src.shape, nil
	t.stride, src.stride = src.stride, nil
	t.dtype = src.dtype
	t.elemCount, src.elemCount = src.elemCount, 0
}

// Move returns a new tensor holding t's state and leaves t invalid.
func (t *Tensor) Move() *Tensor {
	m := &Tensor{}
	m.MoveFrom(t)
	return m
}

// Release drops this tensor's storage reference. The buffer is freed when
// the last tensor sharing it is released. Release is idempotent.
func (t *Tensor) Release() {
	if t.storage == nil {
		return
	}
	t.storage.Release()
	t.storage = nil
	t.shape = nil
	t.stride = nil
	t.elemCount = 0
}

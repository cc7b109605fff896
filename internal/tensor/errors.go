package tensor

import "errors"

// Errors returned by tensor construction and access. Callers should match
// them with errors.Is, since they are wrapped with call-site detail.
var (
	ErrShapeMismatch        = errors.New("shape and data size mismatch")
	ErrInvalidShape         = errors.New("invalid shape")
	ErrEmptyTensor          = errors.New("empty tensors are not allowed")
	ErrUnsupportedDtype     = errors.New("unsupported dtype")
	ErrUninitializedStorage = errors.New("storage not initialized")
	ErrIndexOutOfRange      = errors.New("index out of range")
)

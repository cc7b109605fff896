package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Storage is a fixed-size, reference-counted byte buffer shared by tensors.
//
// A new Storage holds one reference. Each additional owner calls Retain, and
// every owner calls Release exactly once; the buffer is dropped when the last
// reference goes away. The size never changes after allocation.
type Storage struct {
	data     []byte
	size     int
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// NewStorage allocates a Storage of exactly byteSize bytes with refCount = 1.
// The contents are unspecified until written. Negative sizes and sizes the
// runtime cannot allocate fail with ErrInvalidShape.
func NewStorage(byteSize int) (*Storage, error) {
	if byteSize < 0 || byteSize > maxAllocBytes {
		return nil, fmt.Errorf("storage size %d: %w", byteSize, ErrInvalidShape)
	}
	s := &Storage{
		data: make([]byte, byteSize),
		size: byteSize,
	}
	s.refCount.Store(1)
	return s, nil
}

// Len returns the byte size fixed at allocation.
func (s *Storage) Len() int {
	return s.size
}

// RefCount returns the current number of owners.
func (s *Storage) RefCount() int {
	return int(s.refCount.Load())
}

// Released reports whether the buffer has been dropped.
func (s *Storage) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data == nil
}

// Retain increments the reference count (for Clone operations).
// A storage whose count has reached 0 stays released.
func (s *Storage) Retain() {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			return
		}
		if s.refCount.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// Release decrements the reference count and deallocates if it reaches 0.
// Calls after the count has reached 0 are no-ops.
func (s *Storage) Release() {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			return
		}
		if s.refCount.CompareAndSwap(n, n-1) {
			if n == 1 {
				s.mu.Lock()
				s.data = nil
				s.mu.Unlock()
			}
			return
		}
	}
}

// FillZeros overwrites every byte with zero.
func (s *Storage) FillZeros() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return ErrUninitializedStorage
	}
	clear(s.data)
	return nil
}

// bytes exposes the buffer to the owning tensor for in-place writes.
// It returns nil once the storage has been released.
func (s *Storage) bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

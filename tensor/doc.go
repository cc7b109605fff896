// Copyright 2025 The tinytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dtype-tagged, row-major tensors for tinytorch.
//
// # Overview
//
// A Tensor is shape and stride metadata plus a reference to a Storage, a
// fixed-size byte buffer. This package provides:
//   - Validated construction from flat Go slices (New, FromSlice, Full)
//   - Conversion of nested slices and decoded JSON (FromNested)
//   - Shared storage with independent metadata (Clone, CopyFrom)
//   - Ownership transfer (Move, MoveFrom)
//
// # Basic Usage
//
//	import "github.com/tinytorch/tinytorch/tensor"
//
//	func main() {
//	    x, err := tensor.FromNested([][]float64{{1, 2}, {3, 4}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer x.Release()
//
//	    fmt.Println(x.Size())     // [2 2]
//	    fmt.Println(x.Strides())  // [2 1]
//	    v, _ := tensor.At[float32](x, 1, 0)
//	    fmt.Println(v)            // 3
//	}
//
// # Supported Data Types
//
// The element type set is closed:
//   - Float32, Float64 (floating-point, 4 and 8 bytes)
//   - Int32, Int64 (signed integers, 4 and 8 bytes)
//   - Bool (one byte per element)
//
// Source values are cast on construction: floats truncate toward zero when
// stored as integers, and any non-zero number (including NaN) is true.
//
// # Shapes
//
// An empty shape is a scalar with one element and no strides. A shape with a
// zero extent is a valid tensor with no elements and an empty buffer.
// Negative extents are rejected with ErrInvalidShape.
//
// # Memory Management
//
// Storage is reference-counted. Clone and CopyFrom add a reference; Release
// drops one. The buffer is dropped when the last tensor sharing it is
// released, and the count is safe to update from several goroutines.
//
//	a, _ := tensor.New([]int32{1, 2, 3}, tensor.Shape{3}, tensor.Int32)
//	b := a.Clone()  // a.Storage().RefCount() == 2
//	a.Release()     // b still reads [1 2 3]
//	b.Release()     // buffer dropped
//
// A tensor moved from with Move or MoveFrom is invalid and may only be
// released or assigned to.
package tensor

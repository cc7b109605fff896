// Copyright 2025 The tinytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Errors returned by FromNested.
var (
	ErrRaggedShape = errors.New("invalid tensor shape, rows should be of same size")
	ErrNonNumeric  = errors.New("expected numeric value")
)

// Option configures FromNested.
type Option func(*options)

type options struct {
	dtype DataType
	shape Shape
}

// WithDType sets the element type of the new tensor. The default is Float32.
func WithDType(dt DataType) Option {
	return func(o *options) {
		o.dtype = dt
	}
}

// WithShape overrides shape inference. The flattened data must then have
// exactly product(shape) elements.
func WithShape(shape Shape) Option {
	return func(o *options) {
		o.shape = shape
	}
}

// FromNested creates a tensor from a scalar, a flat slice, or nested slices
// and arrays of numbers or bools. Values decoded from JSON ([]any holding
// float64, bool or json.Number) are accepted.
//
// The shape is inferred from the nesting: a scalar becomes shape [1] and an
// empty slice becomes shape [0]. Every row at a given depth must have the
// same length, otherwise ErrRaggedShape is returned.
//
// Example:
//
//	x, err := tensor.FromNested([][]int{{1, 2, 3}, {4, 5, 6}}, tensor.WithDType(tensor.Int32))
//	// x.Size() == Shape{2, 3}
func FromNested(data any, opts ...Option) (*Tensor, error) {
	o := options{dtype: Float32}
	for _, opt := range opts {
		opt(&o)
	}

	v := reflect.ValueOf(data)
	var (
		shape Shape
		flat  leaves
	)
	if isSequence(v) {
		var err error
		if shape, err = inferShape(v); err != nil {
			return nil, err
		}
		if err := flatten(v, &flat); err != nil {
			return nil, err
		}
	} else {
		l, err := toLeaf(v)
		if err != nil {
			return nil, err
		}
		flat.append(l)
		shape = Shape{1}
	}

	if o.shape != nil {
		shape = o.shape
	}
	return flat.build(shape, o.dtype)
}

// isSequence reports whether v is a slice or array, looking through interfaces.
func isSequence(v reflect.Value) bool {
	v = indirect(v)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// inferShape walks the first element of each level and checks every
// sibling against it.
func inferShape(v reflect.Value) (Shape, error) {
	v = indirect(v)
	if !isSequence(v) {
		return Shape{}, nil
	}
	if v.Len() == 0 {
		return Shape{0}, nil
	}

	inner, err := inferShape(v.Index(0))
	if err != nil {
		return nil, err
	}
	for i := 1; i < v.Len(); i++ {
		s, err := inferShape(v.Index(i))
		if err != nil {
			return nil, err
		}
		if !s.Equal(inner) {
			return nil, fmt.Errorf("row %d has shape %v, want %v: %w", i, []int(s), []int(inner), ErrRaggedShape)
		}
	}
	return append(Shape{v.Len()}, inner...), nil
}

func flatten(v reflect.Value, out *leaves) error {
	v = indirect(v)
	if !isSequence(v) {
		l, err := toLeaf(v)
		if err != nil {
			return err
		}
		out.append(l)
		return nil
	}
	for i := 0; i < v.Len(); i++ {
		if err := flatten(v.Index(i), out); err != nil {
			return err
		}
	}
	return nil
}

type leafKind uint8

const (
	leafInt leafKind = iota
	leafFloat
	leafBool
)

type leaf struct {
	kind leafKind
	i    int64
	f    float64
	b    bool
}

var numberType = reflect.TypeOf(json.Number(""))

func toLeaf(v reflect.Value) (leaf, error) {
	v = indirect(v)
	if !v.IsValid() {
		return leaf{}, fmt.Errorf("received nil: %w", ErrNonNumeric)
	}
	if v.Type() == numberType {
		n := json.Number(v.String())
		if i, err := n.Int64(); err == nil {
			return leaf{kind: leafInt, i: i}, nil
		}
		f, err := n.Float64()
		if err != nil {
			return leaf{}, fmt.Errorf("received %q: %w", n, ErrNonNumeric)
		}
		return leaf{kind: leafFloat, f: f}, nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return leaf{kind: leafBool, b: v.Bool()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return leaf{kind: leafInt, i: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return leaf{kind: leafFloat, f: float64(u)}, nil
		}
		return leaf{kind: leafInt, i: int64(u)}, nil
	case reflect.Float32, reflect.Float64:
		return leaf{kind: leafFloat, f: v.Float()}, nil
	default:
		return leaf{}, fmt.Errorf("received %s: %w", v.Type(), ErrNonNumeric)
	}
}

// leaves accumulates flattened values and tracks the widest kind seen.
type leaves struct {
	values   []leaf
	hasFloat bool
	hasInt   bool
}

func (ls *leaves) append(l leaf) {
	switch l.kind {
	case leafFloat:
		ls.hasFloat = true
	case leafInt:
		ls.hasInt = true
	}
	ls.values = append(ls.values, l)
}

// build hands the flat sequence to the core constructor, using the
// narrowest Go type that represents every leaf exactly.
func (ls *leaves) build(shape Shape, dtype DataType) (*Tensor, error) {
	switch {
	case ls.hasFloat:
		data := make([]float64, len(ls.values))
		for i, l := range ls.values {
			switch l.kind {
			case leafInt:
				data[i] = float64(l.i)
			case leafBool:
				if l.b {
					data[i] = 1
				}
			default:
				data[i] = l.f
			}
		}
		return New(data, shape, dtype)
	case ls.hasInt:
		data := make([]int64, len(ls.values))
		for i, l := range ls.values {
			if l.kind == leafBool {
				if l.b {
					data[i] = 1
				}
				continue
			}
			data[i] = l.i
		}
		return New(data, shape, dtype)
	default:
		data := make([]bool, len(ls.values))
		for i, l := range ls.values {
			data[i] = l.b
		}
		return New(data, shape, dtype)
	}
}

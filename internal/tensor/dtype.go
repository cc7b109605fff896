// Package tensor provides the core tensor type of tinytorch: a dtype-tagged,
// row-major array backed by a shared, reference-counted byte buffer.
package tensor

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// DType is a constraint for the Go types that mirror a tensor element type.
type DType interface {
	float32 | float64 | int32 | int64 | bool
}

// Scalar is a constraint for source values accepted by the constructor.
// Values are cast to the tensor's element type during fill.
type Scalar interface {
	bool | int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | float32 | float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Bool
)

// dtypeInfo is one row of the closed dtype dispatch table.
type dtypeInfo struct {
	name  string
	size  int
	store func(b []byte, v value)
	load  func(b []byte) value
}

var dtypeTable = [...]dtypeInfo{
	Float32: {
		name:  "float32",
		size:  4,
		store: func(b []byte, v value) {
			binary.LittleEndian.PutUint32(b, math.Float32bits(v.float32()))
		},
		load: func(b []byte) value {
			return floatValue(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
		},
	},
	Float64: {
		name:  "float64",
		size:  8,
		store: func(b []byte, v value) {
			binary.LittleEndian.PutUint64(b, math.Float64bits(v.float64()))
		},
		load: func(b []byte) value {
			return floatValue(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		},
	},
	Int32: {
		name:  "int32",
		size:  4,
		store: func(b []byte, v value) {
			binary.LittleEndian.PutUint32(b, uint32(int32(v.int64())))
		},
		load: func(b []byte) value {
			return intValue(int64(int32(binary.LittleEndian.Uint32(b))))
		},
	},
	Int64: {
		name:  "int64",
		size:  8,
		store: func(b []byte, v value) {
			binary.LittleEndian.PutUint64(b, uint64(v.int64()))
		},
		load: func(b []byte) value {
			return intValue(int64(binary.LittleEndian.Uint64(b)))
		},
	},
	Bool: {
		name:  "bool",
		size:  1,
		store: func(b []byte, v value) {
			if v.bool() {
				b[0] = 1
			} else {
				b[0] = 0
			}
		},
		load: func(b []byte) value {
			return boolValue(b[0] != 0)
		},
	},
}

// lookup returns the dispatch table row for dt.
func (dt DataType) lookup() (*dtypeInfo, error) {
	if dt < 0 || int(dt) >= len(dtypeTable) {
		return nil, fmt.Errorf("data type %d: %w", int(dt), ErrUnsupportedDtype)
	}
	return &dtypeTable[dt], nil
}

// Validate returns an error if the DataType is not one of the supported types.
func (dt DataType) Validate() error {
	_, err := dt.lookup()
	return err
}

// ByteSize returns the byte width of one element of the data type,
// or ErrUnsupportedDtype for a value outside the closed set.
func (dt DataType) ByteSize() (int, error) {
	info, err := dt.lookup()
	if err != nil {
		return 0, err
	}
	return info.size, nil
}

// Size returns the byte size of the data type.
// It panics if the data type is invalid.
func (dt DataType) Size() int {
	n, err := dt.ByteSize()
	if err != nil {
		panic(err)
	}
	return n
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	info, err := dt.lookup()
	if err != nil {
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
	return info.name
}

// MarshalText satisfies encoding.TextMarshaler.
func (dt DataType) MarshalText() ([]byte, error) {
	info, err := dt.lookup()
	if err != nil {
		return nil, err
	}
	return []byte(info.name), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler.
func (dt *DataType) UnmarshalText(text []byte) error {
	parsed, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// ParseDataType looks up a data type by name, ignoring case,
// so "float32" and "Float32" both resolve to Float32.
func ParseDataType(s string) (DataType, error) {
	for i := range dtypeTable {
		if strings.EqualFold(s, dtypeTable[i].name) {
			return DataType(i), nil
		}
	}
	return 0, fmt.Errorf("data type %q: %w", s, ErrUnsupportedDtype)
}

// DataTypes returns the supported data types in declaration order.
func DataTypes() []DataType {
	types := make([]DataType, len(dtypeTable))
	for i := range dtypeTable {
		types[i] = DataType(i)
	}
	return types
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}

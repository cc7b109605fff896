package tensor

// valueKind tags which field of a value is populated.
type valueKind uint8

const (
	kindFloat valueKind = iota
	kindInt
	kindBool
)

// value is a source or stored element normalized to one of three kinds,
// so that the dispatch table needs a single store/load pair per data type.
type value struct {
	kind valueKind
	f    float64
	i    int64
	b    bool
}

func floatValue(f float64) value { return value{kind: kindFloat, f: f} }
func intValue(i int64) value     { return value{kind: kindInt, i: i} }
func boolValue(b bool) value     { return value{kind: kindBool, b: b} }

func (v value) float64() float64 {
	switch v.kind {
	case kindInt:
		return float64(v.i)
	case kindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return v.f
	}
}

func (v value) float32() float32 {
	if v.kind == kindInt {
		return float32(v.i)
	}
	return float32(v.float64())
}

// int64 truncates floats toward zero.
func (v value) int64() int64 {
	switch v.kind {
	case kindFloat:
		return int64(v.f)
	case kindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return v.i
	}
}

// bool reports whether the value is non-zero. NaN is non-zero.
func (v value) bool() bool {
	switch v.kind {
	case kindFloat:
		return v.f != 0
	case kindInt:
		return v.i != 0
	default:
		return v.b
	}
}

// toValue normalizes a source element.
func toValue[T Scalar](x T) value {
	switch s := any(x).(type) {
	case bool:
		return boolValue(s)
	case int:
		return intValue(int64(s))
	case int8:
		return intValue(int64(s))
	case int16:
		return intValue(int64(s))
	case int32:
		return intValue(int64(s))
	case int64:
		return intValue(s)
	case uint8:
		return intValue(int64(s))
	case uint16:
		return intValue(int64(s))
	case uint32:
		return intValue(int64(s))
	case float32:
		return floatValue(float64(s))
	case float64:
		return floatValue(s)
	default:
		panic("unsupported scalar type")
	}
}

// fromValue casts a stored element to T.
func fromValue[T Scalar](v value) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = v.bool()
	case *int:
		*p = int(v.int64())
	case *int8:
		*p = int8(v.int64())
	case *int16:
		*p = int16(v.int64())
	case *int32:
		*p = int32(v.int64())
	case *int64:
		*p = v.int64()
	case *uint8:
		*p = uint8(v.int64())
	case *uint16:
		*p = uint16(v.int64())
	case *uint32:
		*p = uint32(v.int64())
	case *float32:
		*p = v.float32()
	case *float64:
		*p = v.float64()
	}
	return out
}

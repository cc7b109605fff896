package tensor

import (
	"math"
	"strconv"
	"strings"
)

// DumpOption configures tensor dump output format.
type DumpOption func(*dumpOptions)

// DumpWithPrecision sets the number of decimal places to print. Applies to Float32 and Float64.
func DumpWithPrecision(n int) DumpOption {
	return func(opts *dumpOptions) {
		opts.Precision = n
	}
}

// DumpWithThreshold sets the threshold for printing the entire tensor. If the number of elements
// is less than or equal to this value, the entire tensor will be printed. Otherwise, only the
// beginning and end of each dimension will be printed.
func DumpWithThreshold(n int) DumpOption {
	return func(opts *dumpOptions) {
		opts.Threshold = n
	}
}

// DumpWithEdgeItems sets the number of elements to print at the beginning and end of each dimension.
// Values below 1 are treated as 1.
func DumpWithEdgeItems(n int) DumpOption {
	return func(opts *dumpOptions) {
		opts.EdgeItems = n
	}
}

type dumpOptions struct {
	Precision, Threshold, EdgeItems int
}

// Dump converts a tensor to a human-readable string representation,
// walking the buffer through the tensor's strides.
func Dump(t *Tensor, optsFuncs ...DumpOption) string {
	opts := dumpOptions{Precision: 4, Threshold: 1000, EdgeItems: 3}
	for _, optsFunc := range optsFuncs {
		optsFunc(&opts)
	}

	buf, err := t.buffer()
	if err != nil {
		return "<invalid>"
	}
	info, err := t.dtype.lookup()
	if err != nil {
		return "<unsupported>"
	}

	if t.elemCount <= opts.Threshold {
		opts.EdgeItems = math.MaxInt
	}
	// at least one element is kept at each end of an elided dimension
	opts.EdgeItems = max(opts.EdgeItems, 1)

	var text func(value) string
	switch t.dtype {
	case Float32:
		text = func(v value) string { return strconv.FormatFloat(v.float64(), 'f', opts.Precision, 32) }
	case Float64:
		text = func(v value) string { return strconv.FormatFloat(v.float64(), 'f', opts.Precision, 64) }
	case Bool:
		text = func(v value) string { return strconv.FormatBool(v.bool()) }
	default:
		text = func(v value) string { return strconv.FormatInt(v.int64(), 10) }
	}
	at := func(i int) string {
		off := i * info.size
		return text(info.load(buf[off : off+info.size]))
	}

	rank := len(t.shape)
	if rank == 0 {
		return at(0)
	}

	var sb strings.Builder
	var f func(dim, offset int)
	f = func(dim, offset int) {
		sb.WriteString("[")
		defer sb.WriteString("]")

		n := t.shape[dim]
		sep := ", "
		if dim < rank-1 {
			sep = "," + strings.Repeat("\n", rank-1-dim) + strings.Repeat(" ", dim+1)
		}
		for i := 0; i < n; i++ {
			if i >= opts.EdgeItems && i < n-opts.EdgeItems {
				sb.WriteString("..." + sep)
				// skip to next printable element
				i = n - opts.EdgeItems - 1
				continue
			}
			if dim == rank-1 {
				sb.WriteString(at(offset + i*t.stride[dim]))
			} else {
				f(dim+1, offset+i*t.stride[dim])
			}
			if i < n-1 {
				sb.WriteString(sep)
			}
		}
	}
	f(0, 0)

	return sb.String()
}

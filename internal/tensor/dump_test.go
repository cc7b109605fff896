package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Tensor
		opts  []DumpOption
		want  string
	}{
		{
			name: "matrix float32",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []float32{1, 2, 3, 4}, Shape{2, 2}, Float32)
			},
			opts: []DumpOption{DumpWithPrecision(1)},
			want: "[[1.0, 2.0],\n [3.0, 4.0]]",
		},
		{
			name: "vector int64",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []int{-1, 0, 7}, Shape{3}, Int64)
			},
			want: "[-1, 0, 7]",
		},
		{
			name: "bool",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []bool{true, false}, Shape{2}, Bool)
			},
			want: "[true, false]",
		},
		{
			name: "scalar",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []float64{0.5}, Shape{}, Float64)
			},
			opts: []DumpOption{DumpWithPrecision(2)},
			want: "0.50",
		},
		{
			name: "rank three",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2}, Int32)
			},
			want: "[[[1, 2],\n  [3, 4]],\n\n [[5, 6],\n  [7, 8]]]",
		},
		{
			name: "edge items",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Shape{10}, Int32)
			},
			opts: []DumpOption{DumpWithThreshold(5), DumpWithEdgeItems(2)},
			want: "[0, 1, ..., 8, 9]",
		},
		{
			name: "edge items below one",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []int{0, 1, 2, 3, 4}, Shape{5}, Int32)
			},
			opts: []DumpOption{DumpWithThreshold(2), DumpWithEdgeItems(0)},
			want: "[0, ..., 4]",
		},
		{
			name: "matrix edge items below one",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Shape{3, 3}, Int32)
			},
			opts: []DumpOption{DumpWithThreshold(1), DumpWithEdgeItems(-2)},
			want: "[[0, ..., 2],\n ...,\n [6, ..., 8]]",
		},
		{
			name: "zero extent",
			build: func(t *testing.T) *Tensor {
				return mustNew(t, []int{}, Shape{0}, Int32)
			},
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dump(tt.build(t), tt.opts...))
		})
	}
}

func TestDumpInvalid(t *testing.T) {
	x := mustNew(t, []float32{1}, Shape{1}, Float32)
	x.Release()
	assert.Equal(t, "<invalid>", Dump(x))
}

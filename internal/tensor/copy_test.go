package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCloneSharesStorage(t *testing.T) {
	a := mustNew(t, []float32{1, 2, 3, 4}, Shape{2, 2}, Float32)
	b := a.Clone()

	assert.Same(t, a.Storage(), b.Storage())
	assert.Equal(t, 2, a.Storage().RefCount())

	ab, err := a.Bytes()
	require.NoError(t, err)
	bb, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, ab, bb)
}

func TestCloneMetadataIndependent(t *testing.T) {
	a := mustNew(t, []float32{1, 2, 3, 4}, Shape{2, 2}, Float32)
	b := a.Clone()

	// Mutate b's own metadata directly; a must not observe it.
	b.shape[0] = 4
	b.stride[0] = 9

	assertEqualShape(t, Shape{2, 2}, a.Shape(), "a after mutating b")
	assert.Equal(t, []int{2, 1}, a.Strides())
}

func TestCloneFreedAfterBothReleased(t *testing.T) {
	a := mustNew(t, []int32{1, 2, 3}, Shape{3}, Int32)
	b := a.Clone()
	s := a.Storage()

	a.Release()
	assert.False(t, s.Released())
	assert.False(t, a.Valid())

	v, err := At[int32](b, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v)

	b.Release()
	assert.True(t, s.Released())
	assert.Equal(t, 0, s.RefCount())
}

func TestReleaseIdempotent(t *testing.T) {
	a := mustNew(t, []int32{1}, Shape{1}, Int32)
	b := a.Clone()
	s := a.Storage()

	a.Release()
	a.Release()
	a.Release()
	assert.Equal(t, 1, s.RefCount(), "repeated release of one tensor drops one reference")
	assert.False(t, s.Released())

	b.Release()
	assert.True(t, s.Released())
}

func TestCopyFromReleasesPrevious(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, Shape{2}, Float64)
	b := mustNew(t, []int64{7, 8, 9}, Shape{3}, Int64)
	old := b.Storage()

	b.CopyFrom(a)

	assert.True(t, old.Released(), "destination's previous storage must be released")
	assert.Same(t, a.Storage(), b.Storage())
	assert.Equal(t, 2, a.Storage().RefCount())
	assert.Equal(t, Float64, b.DType())
	assertEqualShape(t, Shape{2}, b.Shape(), "b after CopyFrom")
}

func TestCopyFromSelf(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, Shape{2}, Float64)
	a.CopyFrom(a)

	assert.True(t, a.Valid())
	assert.Equal(t, 1, a.Storage().RefCount())
	v, err := At[float64](a, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestCopyFromSharedStorage(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, Shape{2}, Float64)
	b := a.Clone()

	b.CopyFrom(a)
	assert.Equal(t, 2, a.Storage().RefCount())
	assert.False(t, a.Storage().Released())
}

func TestMoveFrom(t *testing.T) {
	a := mustNew(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, Float32)
	s := a.Storage()
	stride := a.Strides()

	b := mustNew(t, []bool{true}, Shape{1}, Bool)
	old := b.Storage()

	b.MoveFrom(a)

	assert.True(t, old.Released())
	assert.Same(t, s, b.Storage())
	assert.Equal(t, 1, s.RefCount(), "move must not change the reference count")
	assertEqualShape(t, Shape{2, 3}, b.Shape(), "b after MoveFrom")
	assert.Equal(t, stride, b.Strides())
	assert.Equal(t, Float32, b.DType())
	assert.Equal(t, 6, b.NumElements())

	assert.False(t, a.Valid())
	assert.ErrorIs(t, a.FillZeros(), ErrUninitializedStorage)
	_, err := Values[float32](a)
	assert.ErrorIs(t, err, ErrUninitializedStorage)

	// The moved-from tensor can be released or reassigned.
	a.Release()
	assert.False(t, s.Released())
	a.CopyFrom(b)
	assert.True(t, a.Valid())
	assert.Equal(t, 2, s.RefCount())
}

func TestMoveFromSelf(t *testing.T) {
	a := mustNew(t, []float32{1, 2}, Shape{2}, Float32)
	a.MoveFrom(a)

	assert.True(t, a.Valid())
	assertEqualShape(t, Shape{2}, a.Shape(), "a after self-move")
}

func TestMove(t *testing.T) {
	a := mustNew(t, []int64{4, 5}, Shape{2}, Int64)
	s := a.Storage()

	b := a.Move()

	assert.False(t, a.Valid())
	assert.Nil(t, a.Shape())
	assert.Same(t, s, b.Storage())
	got, err := Values[int64](b)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, got)
}

func TestConcurrentCloneRelease(t *testing.T) {
	a := mustNew(t, make([]float32, 128), Shape{8, 16}, Float32)
	s := a.Storage()

	clones := make([]*Tensor, 32)
	for i := range clones {
		clones[i] = a.Clone()
	}
	a.Release()

	var g errgroup.Group
	for _, c := range clones {
		c := c
		g.Go(func() error {
			c.Release()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.True(t, s.Released())
}

func TestCopyFromNil(t *testing.T) {
	a := mustNew(t, []float32{1, 2}, Shape{2}, Float32)
	s := a.Storage()

	a.CopyFrom(nil)
	assert.False(t, a.Valid())
	assert.True(t, s.Released())
}

func TestMoveFromNil(t *testing.T) {
	a := mustNew(t, []int32{1}, Shape{1}, Int32)
	s := a.Storage()

	a.MoveFrom(nil)
	assert.False(t, a.Valid())
	assert.True(t, s.Released())
}

package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytorch/tinytorch/tensor"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCommand(t *testing.T) {
	t.Setenv("TINYTORCH_DTYPE", "")
	t.Setenv("TINYTORCH_PRECISION", "")

	out, err := execute(t, "new", "--precision", "1", "[[1, 2], [3, 4]]")
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][2 2] stride=[2 1]\n[[1.0, 2.0],\n [3.0, 4.0]]\n", out)
}

func TestNewCommandFlags(t *testing.T) {
	out, err := execute(t, "new", "--dtype", "Int32", "--shape", "2,3", "[1, 2, 3, 4, 5, 6.9]")
	require.NoError(t, err)
	assert.Equal(t, "Tensor[int32][2 3] stride=[3 1]\n[[1, 2, 3],\n [4, 5, 6]]\n", out)
}

func TestNewCommandMultipleArgsKeepOrder(t *testing.T) {
	out, err := execute(t, "new", "--no-dump", "--dtype", "bool", "[1, 0]", "[[true]]", "7")
	require.NoError(t, err)
	assert.Equal(t,
		"Tensor[bool][2] stride=[1]\nTensor[bool][1 1] stride=[1 1]\nTensor[bool][1] stride=[1]\n",
		out)
}

func TestNewCommandDefaultDTypeFromEnv(t *testing.T) {
	t.Setenv("TINYTORCH_DTYPE", "float64")

	out, err := execute(t, "new", "--no-dump", "[0.5]")
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float64][1] stride=[1]\n", out)
}

func TestNewCommandErrors(t *testing.T) {
	_, err := execute(t, "new", "--shape", "2,3", "[1, 2, 3, 4, 5]")
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = execute(t, "new", "[[1, 2], [3]]")
	assert.ErrorIs(t, err, tensor.ErrRaggedShape)

	_, err = execute(t, "new", "--dtype", "float16", "[1]")
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDtype)

	_, err = execute(t, "new", "[1, 2")
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = execute(t, "new", "[1] [2]")
	assert.ErrorContains(t, err, "trailing data")

	_, err = execute(t, "new")
	assert.Error(t, err)
}

func TestDTypesCommand(t *testing.T) {
	out, err := execute(t, "dtypes")
	require.NoError(t, err)

	for _, want := range []string{"NAME", "BYTES", "float32", "float64", "int32", "int64", "bool"} {
		assert.Contains(t, out, want)
	}
}

func TestEnvCommand(t *testing.T) {
	t.Setenv("TINYTORCH_EDGEITEMS", "7")

	out, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "TINYTORCH_EDGEITEMS")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "TINYTORCH_DTYPE")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tinytorch version "+Version+"\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "tinytorch version "+Version+"\n", out)
}

func TestNewCommandLargeThresholdFromEnv(t *testing.T) {
	t.Setenv("TINYTORCH_THRESHOLD", "18446744073709551615")

	out, err := execute(t, "new", "--dtype", "int32", "--edgeitems", "1", "[1, 2, 3, 4, 5, 6, 7, 8]")
	require.NoError(t, err)
	assert.Equal(t, "Tensor[int32][8] stride=[1]\n[1, 2, 3, 4, 5, 6, 7, 8]\n", out)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(0))
	assert.Equal(t, 1000, clampInt(1000))
	assert.Equal(t, math.MaxInt, clampInt(math.MaxUint))
}

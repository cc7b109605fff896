package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tinytorch/tinytorch/internal/envconfig"
	"github.com/tinytorch/tinytorch/tensor"
)

func newNewCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new JSON [JSON...]",
		Short: "Create tensors from JSON values and print them",
		Example: `  tinytorch new '[[1, 2], [3, 4]]'
  tinytorch new --dtype int32 --shape 2,3 '[1, 2, 3, 4, 5, 6]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: NewHandler,
	}

	newCmd.Flags().String("dtype", "", "Element type: float32, float64, int32, int64 or bool (default from TINYTORCH_DTYPE)")
	newCmd.Flags().IntSlice("shape", nil, "Shape to use instead of inferring it from the nesting (e.g. 2,3)")
	newCmd.Flags().Int("precision", clampInt(envconfig.Precision()), "Decimal places printed for floats")
	newCmd.Flags().Int("threshold", clampInt(envconfig.Threshold()), "Element count above which output is summarized")
	newCmd.Flags().Int("edgeitems", clampInt(envconfig.EdgeItems()), "Items kept at each end of a summarized dimension")
	newCmd.Flags().Bool("no-dump", envconfig.NoDump(), "Print descriptions only")

	return newCmd
}

// NewHandler builds one tensor per argument and prints them in argument order.
func NewHandler(cmd *cobra.Command, args []string) error {
	dtype := envconfig.DefaultDType()
	if s, _ := cmd.Flags().GetString("dtype"); s != "" {
		var err error
		if dtype, err = tensor.ParseDType(s); err != nil {
			return err
		}
	}

	opts := []tensor.Option{tensor.WithDType(dtype)}
	if cmd.Flags().Changed("shape") {
		shape, err := cmd.Flags().GetIntSlice("shape")
		if err != nil {
			return err
		}
		opts = append(opts, tensor.WithShape(tensor.Shape(shape)))
	}

	tensors := make([]*tensor.Tensor, len(args))
	defer func() {
		for _, t := range tensors {
			if t != nil {
				t.Release()
			}
		}
	}()

	var g errgroup.Group
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			t, err := parseTensor(arg, opts...)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			slog.Debug("created tensor", "arg", i+1, "dtype", t.DType(), "shape", []int(t.Shape()), "bytes", t.ByteSize())
			tensors[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	noDump, _ := cmd.Flags().GetBool("no-dump")
	precision, _ := cmd.Flags().GetInt("precision")
	threshold, _ := cmd.Flags().GetInt("threshold")
	edgeItems, _ := cmd.Flags().GetInt("edgeitems")

	out := cmd.OutOrStdout()
	for _, t := range tensors {
		fmt.Fprintln(out, t)
		if noDump {
			continue
		}
		fmt.Fprintln(out, tensor.Dump(t,
			tensor.DumpWithPrecision(precision),
			tensor.DumpWithThreshold(threshold),
			tensor.DumpWithEdgeItems(edgeItems),
		))
	}
	return nil
}

// clampInt converts a configuration value to an int flag default,
// saturating at math.MaxInt.
func clampInt(u uint) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}

// parseTensor decodes a JSON value, keeping integers exact, and converts it.
func parseTensor(s string, opts ...tensor.Option) (*tensor.Tensor, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON: trailing data after value")
	}
	return tensor.FromNested(data, opts...)
}

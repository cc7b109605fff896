package cli

import (
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tinytorch/tinytorch/internal/envconfig"
	"github.com/tinytorch/tinytorch/tensor"
)

func newDTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dtypes",
		Short: "List supported element types",
		Args:  cobra.NoArgs,
		RunE:  DTypesHandler,
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}

// DTypesHandler prints the closed set of element types with their byte widths.
func DTypesHandler(cmd *cobra.Command, _ []string) error {
	var data [][]string
	for _, dt := range tensor.DTypes() {
		data = append(data, []string{dt.String(), strconv.Itoa(dt.Size())})
	}

	renderTable(cmd, []string{"NAME", "BYTES"}, data)
	return nil
}

// EnvHandler prints every configuration variable with its effective value.
func EnvHandler(cmd *cobra.Command, _ []string) error {
	vars := envconfig.AsMap()
	values := envconfig.Values()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	var data [][]string
	for _, name := range names {
		data = append(data, []string{name, values[name], vars[name].Description})
	}

	renderTable(cmd, []string{"NAME", "VALUE", "DESCRIPTION"}, data)
	return nil
}

func renderTable(cmd *cobra.Command, header []string, data [][]string) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

// Package main provides the tinytorch CLI.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tinytorch/tinytorch/internal/cli"
)

func main() {
	cobra.CheckErr(cli.NewCLI().ExecuteContext(context.Background()))
}

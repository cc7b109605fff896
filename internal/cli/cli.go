// Package cli implements the tinytorch command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinytorch/tinytorch/internal/envconfig"
)

// Version is the tinytorch release string.
var Version = "v0.1.0-dev"

func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// initLogging installs a text slog handler on stderr at the configured level.
func initLogging() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: envconfig.LogLevel()})
	slog.SetDefault(slog.New(handler))
}

// NewCLI builds the root command with every subcommand attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "tinytorch",
		Short:         "Build and inspect dtype-tagged tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	newCmd := newNewCmd()
	dtypesCmd := newDTypesCmd()
	envCmd := newEnvCmd()
	versionCmd := newVersionCmd()

	envVars := envconfig.AsMap()
	appendEnvDocs(newCmd, []envconfig.EnvVar{
		envVars["TINYTORCH_DEBUG"],
		envVars["TINYTORCH_DTYPE"],
		envVars["TINYTORCH_PRECISION"],
		envVars["TINYTORCH_THRESHOLD"],
		envVars["TINYTORCH_EDGEITEMS"],
		envVars["TINYTORCH_NODUMP"],
	})

	rootCmd.AddCommand(
		newCmd,
		dtypesCmd,
		envCmd,
		versionCmd,
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "tinytorch version %s\n", Version)
}

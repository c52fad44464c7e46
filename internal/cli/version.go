package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildVersion is set at build time with -ldflags.
var BuildVersion = "0.0.0-dev"

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spirals v%s (Go version: %s)\n", BuildVersion, runtime.Version())
		},
	}
}

// Package cli implements yelpcampctl, the operator tool that runs beside the
// web server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state so
// tests can run commands independently.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "yelpcampctl",
		Short: "YelpCamp operator tool",
		Long: `yelpcampctl manages a YelpCamp database outside the web server.

Commands:
  seed   - Load users, campgrounds and comments from a TOML file`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(newSeedCmd(func() *zap.Logger {
		if !verbose {
			return zap.NewNop()
		}
		lg, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return lg
	}))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cli implements studioctl, which applies panel edits to descriptor
// files without a running server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"thirdcoast.systems/studio/internal/logging"
)

var (
	outputJSON bool
	writeBack  bool
	logLevel   string
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "studioctl",
		Short:         "Inspect panels and edit transform descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(logging.Options{Level: logLevel, Output: cmd.ErrOrStderr()})
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newPanelsCmd())
	cmd.AddCommand(newFieldsCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}

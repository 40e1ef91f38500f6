// Package cli wires the surge commands.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "surge",
	Short:   "Injection schedule planner for load tests",
	Version: version,
	Long: `Surge composes declarative injection profiles (bursts, ramps, constant
and varying rates, idle gaps, stepped ramps) into a single ordered timeline
of virtual-user start offsets, and reports on the resulting arrival pattern.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(planCmd)
	RootCmd.AddCommand(validateCmd)
}

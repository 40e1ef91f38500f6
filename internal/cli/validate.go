package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/surge/internal/config"
	"github.com/wesleyorama2/surge/internal/output"
)

var validateNoColor bool

var validateCmd = &cobra.Command{
	Use:   "validate [scenario file]",
	Short: "Check a scenario file without producing a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := config.LoadScenario(args[0])
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", output.ErrorIcon(validateNoColor), err)
			return fmt.Errorf("scenario is invalid")
		}

		// Constructors enforce constraints the field validator cannot see
		// on its own, so build the schedule too.
		schedule, err := config.BuildSchedule(scenario)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", output.ErrorIcon(validateNoColor), err)
			return fmt.Errorf("scenario is invalid")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s scenario is valid: %d profiles, %d users over %s\n",
			output.SuccessIcon(validateNoColor),
			len(scenario.Profiles), schedule.TotalUsers(), schedule.TotalDuration())
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateNoColor, "no-color", false, "Disable colored output")
}

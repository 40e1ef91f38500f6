package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/surge/internal/config"
	"github.com/wesleyorama2/surge/internal/output"
)

var (
	planFormat  string
	planPreview int
	planNoColor bool
)

var planCmd = &cobra.Command{
	Use:   "plan [scenario file]",
	Short: "Compose a scenario's profiles and summarize the arrival timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := config.LoadScenario(args[0])
		if err != nil {
			return err
		}

		schedule, err := config.BuildSchedule(scenario)
		if err != nil {
			return err
		}

		report := output.BuildPlanReport(scenario.Name, schedule, planPreview)

		noColor := planNoColor || !isatty.IsTerminal(os.Stdout.Fd())
		formatter := output.NewFormatter(noColor)

		switch planFormat {
		case "json":
			out, err := formatter.FormatJSON(report)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		case "text":
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatText(report))
		default:
			return fmt.Errorf("unknown output format: %s", planFormat)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "text", "Output format (text, json)")
	planCmd.Flags().IntVarP(&planPreview, "preview", "p", 10, "Number of leading arrivals to preview")
	planCmd.Flags().BoolVar(&planNoColor, "no-color", false, "Disable colored output")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Fjolfrin/tbtui/internal/logging"
	"github.com/Fjolfrin/tbtui/internal/report"
)

func newSummaryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "summary",
		Short: "Print the minimum and maximum of every metric",
		Long: `Print, for every run and metric, the first minimum and maximum and
the epoch they occur at.

Examples:
  tbtui summary                 # Table per run
  tbtui summary --output json   # JSON for scripts
  tbtui summary --output yaml`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}
	c.Flags().StringP("output", "o", string(report.FormatText), "Output format: text, json or yaml")
	return c
}

func runSummary(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	format, err := report.ParseFormat(output)
	if err != nil {
		return err
	}

	ctx, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	summary := report.Summarize(ctx.Runs)
	logging.Debug("writing summary", "runs", len(summary), "format", format)
	return report.Write(cmd.OutOrStdout(), summary, format)
}

package cli

import (
	"fmt"

	"github.com/evfreq/evfreq/internal/core/ports"
	"github.com/evfreq/evfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the 'stats' subcommand.
func NewStatsCommand(distributionService ports.DistributionService) *cobra.Command {
	var scanLimit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics of the frequency distribution.",
		Long: `Builds the frequency distribution from the event log and displays the
number of distinct events and the sum of all frequencies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatsCmd(cmd, args, distributionService, scanLimit)
		},
	}

	cmd.Flags().IntVar(&scanLimit, "scan-limit", 0, "Maximum number of event log lines to scan (0 scans the whole log)")
	return cmd
}

// runStatsCmd contains the core logic for the 'stats' command.
func runStatsCmd(
	_ *cobra.Command,
	_ []string,
	distributionService ports.DistributionService,
	scanLimit int,
) error {
	stats, err := distributionService.Stats(scanLimit)
	if err != nil {
		return fmt.Errorf("could not compute distribution statistics: %w", err)
	}

	fmt.Println(ui.HeaderColor("Frequency distribution statistics:"))
	fmt.Printf("  Distinct events:    %s\n", ui.CountColor(stats.NumberOfEvents))
	fmt.Printf("  Sum of frequencies: %s\n", ui.CountColor(stats.SumOfFrequencies))
	fmt.Println(ui.DetailColor("Source: " + stats.SourceDetails))
	return nil
}

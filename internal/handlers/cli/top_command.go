package cli

import (
	"fmt"

	"github.com/evfreq/evfreq/internal/core/ports"
	"github.com/evfreq/evfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewTopCommand creates the 'top' subcommand.
func NewTopCommand(distributionService ports.DistributionService, codec ports.TokenCodec) *cobra.Command {
	var limit int
	var scanLimit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most frequent events.",
		Long: `Builds the frequency distribution from the event log and displays the top
events ordered by descending frequency, ties broken by ascending event
identifier.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopCmd(cmd, args, distributionService, codec, limit, scanLimit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of events to display")
	cmd.Flags().IntVar(&scanLimit, "scan-limit", 0, "Maximum number of event log lines to scan (0 scans the whole log)")
	return cmd
}

// runTopCmd contains the core logic for the 'top' command.
func runTopCmd(
	_ *cobra.Command,
	_ []string,
	distributionService ports.DistributionService,
	codec ports.TokenCodec,
	limit int,
	scanLimit int,
) error {
	report, err := distributionService.TopEvents(scanLimit, limit)
	if err != nil {
		return fmt.Errorf("could not build frequency report: %w", err)
	}

	if len(report.Pairs) == 0 {
		fmt.Println(ui.InfoColor("No events observed."))
		fmt.Println(ui.DetailColor("Source: " + report.SourceDetails))
		return nil
	}

	fmt.Println(ui.HeaderColor("Most frequent events:"))
	renderPairsTable(report.Pairs, codec)
	fmt.Println(ui.DetailColor("Source: " + report.SourceDetails))
	return nil
}

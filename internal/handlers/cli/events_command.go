package cli

import (
	"fmt"

	"github.com/evfreq/evfreq/internal/core/ports"
	"github.com/evfreq/evfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the 'events' subcommand.
func NewEventsCommand(distributionService ports.DistributionService, codec ports.TokenCodec) *cobra.Command {
	var scanLimit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List all observed events sorted by identifier.",
		Long: `Builds the frequency distribution from the event log and displays every
observed event with its frequency, ordered by ascending event identifier.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEventsCmd(cmd, args, distributionService, codec, scanLimit)
		},
	}

	cmd.Flags().IntVar(&scanLimit, "scan-limit", 0, "Maximum number of event log lines to scan (0 scans the whole log)")
	return cmd
}

// runEventsCmd contains the core logic for the 'events' command.
func runEventsCmd(
	_ *cobra.Command,
	_ []string,
	distributionService ports.DistributionService,
	codec ports.TokenCodec,
	scanLimit int,
) error {
	report, err := distributionService.EventsByID(scanLimit)
	if err != nil {
		return fmt.Errorf("could not build event listing: %w", err)
	}

	if len(report.Pairs) == 0 {
		fmt.Println(ui.InfoColor("No events observed."))
		fmt.Println(ui.DetailColor("Source: " + report.SourceDetails))
		return nil
	}

	fmt.Println(ui.HeaderColor("Observed events (sorted by identifier):"))
	renderPairsTable(report.Pairs, codec)
	fmt.Println(ui.DetailColor("Source: " + report.SourceDetails))
	return nil
}

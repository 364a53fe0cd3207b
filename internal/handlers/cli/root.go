package cli

import (
	"fmt"

	"github.com/evfreq/evfreq/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	distributionService ports.DistributionService,
	codec ports.TokenCodec,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "evfreq",
		Short: "evfreq counts integer-coded events and reports their frequencies.",
		Long: `evfreq accumulates a frequency distribution over integer-coded events
read from an event log, and reports the most frequent events, the full
identifier-sorted distribution, and summary statistics.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if distributionService == nil && (cmd.Name() == "top" || cmd.Name() == "events" || cmd.Name() == "stats") {
				return fmt.Errorf("distribution service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewTopCommand(distributionService, codec))
	rootCmd.AddCommand(NewEventsCommand(distributionService, codec))
	rootCmd.AddCommand(NewStatsCommand(distributionService))

	return rootCmd
}

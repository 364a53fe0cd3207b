package main

import (
	"fmt"
	"os"

	"github.com/evfreq/evfreq/internal/adapters/seedcounts"
	"github.com/evfreq/evfreq/internal/adapters/tokencoding"
	"github.com/evfreq/evfreq/internal/core/services/distribution"
	"github.com/evfreq/evfreq/internal/handlers/cli"
	"github.com/evfreq/evfreq/internal/repositories/eventlog"
)

// Version is set at build time
var Version = "dev"

func main() {
	codec := tokencoding.NewVocabulary()

	logFinder := eventlog.NewDefaultLogFinder()
	eventRepo, err := eventlog.NewProvider(logFinder, codec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing event log provider: %v\n", err)
		os.Exit(1)
	}

	// seedProvider can be nil if NewYAMLProvider returns an error
	seedProvider, err := seedcounts.NewYAMLProvider(seedcounts.DefaultSeedFile())
	if err != nil {
		// The service will handle a nil seedProvider.
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize seed count provider %v. Continuing without seed counts.\n", err)
		seedProvider = nil // Explicitly set to nil on error
	}

	distributionSvc := distribution.NewService(eventRepo, seedProvider)
	rootCmd := cli.NewRootCommand(Version, distributionSvc, codec)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package eventlog

import (
	"fmt"
	"os"

	"github.com/evfreq/evfreq/internal/core/ports"
)

/*
Provider reads integer-coded events from a log file.
It implements the ports.EventSource interface.
*/
type Provider struct {
	LogFile          string // Stores the absolute path
	codec            ports.TokenCodec
	sourceIdentifier string // Stores the user-friendly source identifier
}

// NewProvider creates a new file-based event source. codec is optional; when
// set, non-numeric tokens in the log are integerized through it instead of
// being skipped.
func NewProvider(finder ports.EventLogFinder, codec ports.TokenCodec) (ports.EventSource, error) {
	logPath, err := finder.Find()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not automatically find an event log file: %v. Event counts might be unavailable.\n", err)
		return &Provider{
			codec:            codec,
			sourceIdentifier: "Event log: not found or configured",
		}, nil
	}

	return &Provider{
		LogFile:          logPath, // Store the actual absolute path for internal use
		codec:            codec,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(logPath)), // Store user-friendly path for display
	}, nil
}

// Events implements the ports.EventSource interface.
func (p *Provider) Events(scanLimit int) ([]int32, error) {
	if p.LogFile == "" {
		return nil, fmt.Errorf("event log file not found or configured. Cannot read events")
	}

	return p.readEvents(scanLimit)
}

func (p *Provider) LogPath() string {
	return p.LogFile
}

func (p *Provider) SourceIdentifier() string {
	if p.sourceIdentifier != "" {
		return p.sourceIdentifier
	}
	// Fallback logic if sourceIdentifier was not pre-computed.
	if p.LogFile != "" {
		return fmt.Sprintf("File: %s", toUserFriendlyPath(p.LogFile))
	}
	return "Event log: not found or configured"
}

package seedcounts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/evfreq/evfreq/internal/core/domain/events"
	"github.com/evfreq/evfreq/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the SeedProvider interface by reading initial
// event counts from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing seed counts.
func NewYAMLProvider(filePath string) (ports.SeedProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultSeedFile returns the conventional seed counts location,
// $HOME/.evfreq/seeds.yaml, or an empty string if the home directory
// cannot be determined.
func DefaultSeedFile() string {
	usr, err := user.Current()
	if err != nil {
		return ""
	}
	return filepath.Join(usr.HomeDir, ".evfreq", "seeds.yaml")
}

// SeedCounts reads and parses seed counts from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) SeedCounts() ([]events.Observation, error) {
	seeds := []events.Observation{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// File not existing is not an error for this provider; it means no seed counts.
			return seeds, nil
		}
		return nil, fmt.Errorf("failed to read seed counts file %s: %w", p.filePath, err)
	}

	// If the file is empty, os.ReadFile returns an empty slice and no error.
	// An empty yamlFile would cause decoder.Decode to return io.EOF.
	if len(yamlFile) == 0 {
		return seeds, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&seeds); err != nil {
		// A file with only comments or "---" also decodes to EOF; treat it
		// the same as an empty file.
		if errors.Is(err, io.EOF) {
			return seeds, nil
		}
		return nil, fmt.Errorf("failed to unmarshal seed counts from %s: %w", p.filePath, err)
	}

	return seeds, nil
}

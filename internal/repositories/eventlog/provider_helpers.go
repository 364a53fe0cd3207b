package eventlog

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath // Fallback if user/home directory cannot be determined
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(absPath, homeDir) {
		return absPath // Path is not under home directory
	}

	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath // Fallback in case of an unexpected error with Rel
	}
	return filepath.Join("~", relPath)
}

// findEventLogFile attempts to find an event log file by checking the
// EVFREQ_EVENTS_FILE environment variable and common locations.
func findEventLogFile() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	homeDir := usr.HomeDir

	// 1. Check the EVFREQ_EVENTS_FILE environment variable.
	if logFileEnvVal := os.Getenv("EVFREQ_EVENTS_FILE"); logFileEnvVal != "" {
		pathToCheck := logFileEnvVal
		if !filepath.IsAbs(pathToCheck) {
			// Resolve relative to home directory if not absolute
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	// 2. Check a list of common default event log paths.
	potentialPaths := []string{
		"events.log", // Log in the working directory
		filepath.Join(homeDir, ".evfreq", "events.log"),
	}

	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not automatically find an event log file. Please place one at ./events.log or ~/.evfreq/events.log, or set the EVFREQ_EVENTS_FILE environment variable")
}

// determineScanLimit determines how many event log lines to scan.
// Zero means the whole log.
func determineScanLimit(requestedScanLimit int) int {
	if requestedScanLimit > 0 { // User-defined limit takes precedence
		return requestedScanLimit
	}
	scanLimitStr := os.Getenv("EVFREQ_SCAN_LIMIT")
	if scanLimitStr != "" {
		if scanLimit, err := strconv.Atoi(scanLimitStr); err == nil && scanLimit > 0 {
			return scanLimit
		}
	}
	return 0 // Default: scan the whole log
}

// readEvents scans the log file line by line, treating each
// whitespace-separated field as one event occurrence. Numeric fields are
// used as event identifiers directly; non-numeric fields are integerized
// through the codec when one is configured, and skipped otherwise.
func (p *Provider) readEvents(scanLimit int) ([]int32, error) {
	file, err := os.Open(p.LogFile)
	if err != nil {
		return nil, fmt.Errorf("opening event log %s: %w", toUserFriendlyPath(p.LogFile), err)
	}
	defer file.Close()

	limit := determineScanLimit(scanLimit)

	observed := []int32{}
	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		if limit > 0 && lines >= limit {
			break
		}
		lines++

		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" {
			continue
		}

		for _, field := range strings.Fields(trimmedLine) {
			id, err := strconv.ParseInt(field, 10, 32)
			if err == nil {
				observed = append(observed, int32(id))
				continue
			}
			if p.codec != nil {
				observed = append(observed, p.codec.Encode(field))
			}
			// Skip tokens that cannot be integerized.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading event log %s: %w", toUserFriendlyPath(p.LogFile), err)
	}

	return observed, nil
}

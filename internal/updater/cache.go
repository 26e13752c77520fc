package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "update-check.json"
	// DefaultCacheMaxAge is how long a version check stays fresh.
	DefaultCacheMaxAge = 24 * time.Hour
)

// CheckState is the cached result of the most recent version check.
type CheckState struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// ReadState loads the cached check state from the config directory.
// Returns nil, nil if no check has been recorded yet.
func ReadState(configDir string) (*CheckState, error) {
	data, err := os.ReadFile(filepath.Join(configDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading update check state: %w", err)
	}

	var state CheckState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing update check state: %w", err)
	}
	return &state, nil
}

// WriteState persists the check state to the config directory.
func WriteState(configDir string, state *CheckState) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling update check state: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, cacheFileName), data, 0644); err != nil {
		return fmt.Errorf("writing update check state: %w", err)
	}
	return nil
}

// IsStale reports whether state is older than maxAge (a nil state is stale).
func IsStale(state *CheckState, maxAge time.Duration) bool {
	if state == nil {
		return true
	}
	return time.Since(state.CheckedAt) > maxAge
}

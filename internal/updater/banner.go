package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/gofoot-labs/gofoot/internal/branding"
)

// NotifyIfOutdated prints an update banner when the cached version check says
// a newer release exists. It never blocks: a stale cache is refreshed by a
// background goroutine for the next invocation.
func (u *Updater) NotifyIfOutdated(w io.Writer, configDir string) {
	state, err := ReadState(configDir)
	if err != nil {
		// A broken cache just means no banner this run.
		return
	}

	if state != nil && state.UpdateAvailable {
		printBanner(w, state.CurrentVersion, state.LatestVersion)
	}

	if IsStale(state, DefaultCacheMaxAge) {
		go u.refreshState(configDir)
	}
}

func printBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s upgrade` to install\n\n", branding.CLIName())
}

// refreshState fetches the latest release and records the result. It runs in
// a background goroutine and fails silently.
func (u *Updater) refreshState(configDir string) {
	release, err := u.Latest()
	if err != nil {
		return
	}

	available, err := IsNewer(u.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = WriteState(configDir, &CheckState{
		LatestVersion:   release.Version,
		CurrentVersion:  u.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}

package cli

import (
	"fmt"
	"os"

	"github.com/gofoot-labs/gofoot/internal/branding"
	"github.com/gofoot-labs/gofoot/internal/config"
	"github.com/gofoot-labs/gofoot/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is a Greenfoot-inspired library for writing simple 2D games in Go.
The CLI scaffolds new game projects and checks your environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The upgrade command manages the check state itself.
		name := cmd.Name()
		if name == "upgrade" || name == "self-update" {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.NotifyIfOutdated(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

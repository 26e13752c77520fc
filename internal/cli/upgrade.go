package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gofoot-labs/gofoot/internal/branding"
	"github.com/gofoot-labs/gofoot/internal/config"
	"github.com/gofoot-labs/gofoot/internal/updater"
	"github.com/spf13/cobra"
)

var (
	upgradeCheck   bool
	upgradeForce   bool
	upgradeVersion string
)

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeCheck, "check", false, "Only check for updates, don't install")
	upgradeCmd.Flags().BoolVar(&upgradeForce, "force", false, "Reinstall even if already on the latest version")
	upgradeCmd.Flags().StringVar(&upgradeVersion, "version", "", "Install a specific version (e.g., 1.2.0)")
	rootCmd.AddCommand(upgradeCmd)
}

var upgradeCmd = &cobra.Command{
	Use:     "upgrade",
	Aliases: []string{"self-update"},
	Short:   "Upgrade gofoot to the latest version",
	Long: `Downloads and installs the latest gofoot release from GitHub,
or from a mirror configured via the 'mirror' config key.

  gofoot upgrade                  # upgrade to latest
  gofoot upgrade --check          # check only
  gofoot upgrade --version 1.2.0  # install a specific version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		mirror := config.Get(config.KeyMirror)
		if envMirror := os.Getenv(branding.EnvVar("MIRROR")); envMirror != "" {
			mirror = envMirror
		}

		var opts []updater.Option
		if mirror != "" {
			opts = append(opts, updater.WithMirror(mirror))
		}
		u := updater.New(buildVersion, opts...)

		var release *updater.Release
		var err error
		if upgradeVersion != "" {
			fmt.Fprintf(os.Stderr, "Checking for version %s...\n", upgradeVersion)
			release, err = u.ByTag(upgradeVersion)
		} else {
			fmt.Fprintln(os.Stderr, "Checking for updates...")
			release, err = u.Latest()
		}
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsNewer(buildVersion, release.Version)
		if err != nil {
			// A "dev" build has no comparable version; always upgradeable.
			if buildVersion == "dev" {
				available = true
			} else {
				return fmt.Errorf("comparing versions: %w", err)
			}
		}

		if upgradeCheck {
			if available {
				fmt.Printf("Update available: %s -> %s\n", buildVersion, release.Version)
			} else {
				fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			}
			return nil
		}

		if !available && !upgradeForce {
			fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			return nil
		}

		fmt.Fprintf(os.Stderr, "Downloading %s %s for %s/%s...\n",
			branding.CLIName(), release.Version, runtime.GOOS, runtime.GOARCH)

		tmpDir, err := os.MkdirTemp("", branding.CLIName()+"-upgrade-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		archivePath, err := u.Download(release, tmpDir)
		if err != nil {
			return fmt.Errorf("downloading binary: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Verifying checksum...")
		if err := u.VerifyChecksum(release, archivePath); err != nil {
			return fmt.Errorf("checksum verification failed: %w", err)
		}

		binPath, err := updater.Extract(archivePath, tmpDir)
		if err != nil {
			return fmt.Errorf("extracting binary: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Installing...")
		currentBinary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("finding current binary: %w", err)
		}

		if err := updater.Install(binPath, currentBinary); err != nil {
			return err
		}

		_ = updater.WriteState(config.Dir(), &updater.CheckState{
			LatestVersion:   release.Version,
			CurrentVersion:  release.Version,
			UpdateAvailable: false,
		})

		fmt.Printf("Successfully upgraded to %s\n", release.Version)
		return nil
	},
}

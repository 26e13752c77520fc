package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gofoot-labs/gofoot/internal/config"
	"github.com/gofoot-labs/gofoot/internal/manifest"
	"github.com/spf13/cobra"
)

var doctorManifest string

func init() {
	doctorCmd.Flags().StringVar(&doctorManifest, "check-manifest", "", "Validate a gofoot.yaml manifest at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for your gofoot environment",
	Long:  `Run diagnostic checks on the tools and configuration gofoot relies on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if doctorManifest != "" {
			return runManifestCheck(doctorManifest)
		}

		runToolchainCheck()
		runConfigCheck()
		runProjectCheck()
		return nil
	},
}

func runToolchainCheck() {
	fmt.Println("Toolchain check:")
	checkBinary("go")
	checkBinary("git")
}

func checkBinary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found on PATH\n", name)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
}

func runConfigCheck() {
	fmt.Println("Config check:")

	dir := config.Dir()
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		fmt.Printf("  [INFO] %s does not exist yet (created on first 'config set')\n", dir)
		return
	}
	if err != nil {
		fmt.Printf("  [FAIL] %s: %v\n", dir, err)
		return
	}
	if !info.IsDir() {
		fmt.Printf("  [WARN] %s exists but is not a directory\n", dir)
		return
	}
	fmt.Printf("  [ OK ] %s exists\n", dir)

	if _, err := os.Stat(config.FilePath()); os.IsNotExist(err) {
		fmt.Printf("  [INFO] no config file yet\n")
		return
	}
	fmt.Printf("  [ OK ] %s exists\n", config.FilePath())
}

// runProjectCheck validates the manifest of the current directory when one
// is present. Not being inside a project is not a failure.
func runProjectCheck() {
	fmt.Println("Project check:")

	path := filepath.Join(".", manifest.FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("  [INFO] no %s in current directory\n", manifest.FileName)
		return
	}

	if err := runManifestCheck(path); err != nil {
		// Already reported line by line.
		return
	}
}

func runManifestCheck(path string) error {
	fmt.Printf("Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		proj, err := manifest.ParseFile(path)
		if err != nil {
			fmt.Printf("  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Printf("  [ OK ] Valid manifest: %s (v%s)\n", proj.Name, proj.Version)
		return nil
	}

	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}

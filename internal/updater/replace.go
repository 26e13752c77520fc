package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/gofoot-labs/gofoot/internal/branding"
	"github.com/gofoot-labs/gofoot/internal/platform"
)

// Install replaces the current binary with the one at newPath. It keeps a
// backup until the new binary passes a version check, and rolls back on
// failure.
func Install(newPath, currentPath string) error {
	if runtime.GOOS == "windows" {
		return fmt.Errorf("self-update is not supported on Windows; download the latest release from https://github.com/%s/releases", branding.GitHubRepo())
	}

	info, err := os.Stat(currentPath)
	if err != nil {
		return fmt.Errorf("stat current binary: %w", err)
	}
	origPerm := info.Mode().Perm()

	backupPath := currentPath + ".backup"
	if err := moveFile(currentPath, backupPath); err != nil {
		return fmt.Errorf("creating backup: %w", err)
	}

	if err := moveFile(newPath, currentPath); err != nil {
		Rollback(backupPath, currentPath)
		return fmt.Errorf("installing new binary: %w", err)
	}
	platform.Chmod(currentPath, origPerm)

	if err := verifyBinary(currentPath); err != nil {
		Rollback(backupPath, currentPath)
		return fmt.Errorf("verification failed, rolled back: %w", err)
	}

	os.Remove(backupPath)
	return nil
}

// verifyBinary runs the installed binary's "version --json" and checks that
// the output parses.
func verifyBinary(binaryPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := exec.CommandContext(ctx, binaryPath, "version", "--json").Output()
	if err != nil {
		return fmt.Errorf("new binary did not run: %w", err)
	}

	var versionInfo map[string]string
	if err := json.Unmarshal(output, &versionInfo); err != nil {
		return fmt.Errorf("parsing version output: %w", err)
	}
	return nil
}

// Rollback restores the backup to the current path.
func Rollback(backupPath, currentPath string) error {
	if err := moveFile(backupPath, currentPath); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// moveFile renames src to dst, falling back to copy+remove when the rename
// crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

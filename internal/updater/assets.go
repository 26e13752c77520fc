package updater

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gofoot-labs/gofoot/internal/branding"
)

// ArchiveName returns the release archive filename for the current platform,
// matching the GoReleaser naming template gofoot_{os}_{arch}.tar.gz
// (.zip on Windows).
func ArchiveName() string {
	ext := ".tar.gz"
	if runtime.GOOS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", branding.CLIName(), runtime.GOOS, runtime.GOARCH, ext)
}

// SelectAsset finds the release asset for the current OS/arch. If no asset
// matches the expected archive name exactly, it falls back to any archive
// whose name contains the os_arch pair.
func SelectAsset(assets []Asset) (*Asset, error) {
	expected := ArchiveName()
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	pattern := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && isArchive(assets[i].Name) {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no asset found for %s/%s (expected %s)", runtime.GOOS, runtime.GOARCH, expected)
}

func isArchive(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".zip")
}

// Package updater implements self-update for the gofoot binary. It checks
// GitHub Releases (or a configured mirror) for new versions, downloads and
// checksum-verifies the release archive, extracts the binary, and swaps the
// running executable with backup and rollback. A daily-cached version check
// powers the update banner printed on startup.
package updater

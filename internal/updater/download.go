package updater

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofoot-labs/gofoot/internal/branding"
)

// Download fetches the release archive for the current platform into destDir
// and returns its path. Progress is reported on stderr.
func (u *Updater) Download(release *Release, destDir string) (string, error) {
	asset, err := SelectAsset(release.Assets)
	if err != nil {
		return "", err
	}

	resp, err := u.get(asset.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	destPath := filepath.Join(destDir, asset.Name)
	f, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer f.Close()

	body := io.Reader(resp.Body)
	if resp.ContentLength > 0 {
		body = io.TeeReader(resp.Body, &progressWriter{total: resp.ContentLength, out: os.Stderr})
		defer fmt.Fprintln(os.Stderr)
	}
	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("writing download: %w", err)
	}

	return destPath, nil
}

// progressWriter prints a percentage as bytes flow through it.
type progressWriter struct {
	total       int64
	written     int64
	lastPercent int
	out         io.Writer
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	percent := int(p.written * 100 / p.total)
	if percent != p.lastPercent {
		fmt.Fprintf(p.out, "\rDownloading... %d%%", percent)
		p.lastPercent = percent
	}
	return len(b), nil
}

// VerifyChecksum fetches checksums.txt from the release assets and checks
// the archive's sha256 against it.
func (u *Updater) VerifyChecksum(release *Release, archivePath string) error {
	var checksumAsset *Asset
	for i := range release.Assets {
		if release.Assets[i].Name == "checksums.txt" {
			checksumAsset = &release.Assets[i]
			break
		}
	}
	if checksumAsset == nil {
		return fmt.Errorf("checksums.txt not found in release assets")
	}

	resp, err := u.get(checksumAsset.DownloadURL)
	if err != nil {
		return fmt.Errorf("downloading checksums: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("checksums download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading checksums: %w", err)
	}

	// Each line of checksums.txt is "sha256  filename".
	archiveName := filepath.Base(archivePath)
	expected := ""
	for _, line := range strings.Split(string(body), "\n") {
		parts := strings.Fields(line)
		if len(parts) == 2 && parts[1] == archiveName {
			expected = parts[0]
			break
		}
	}
	if expected == "" {
		return fmt.Errorf("no checksum found for %s in checksums.txt", archiveName)
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("computing checksum: %w", err)
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if actual != expected {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}

func (u *Updater) get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")
	return u.httpClient.Do(req)
}

// Extract pulls the gofoot binary out of a tar.gz or zip archive and
// returns the path to the extracted file.
func Extract(archivePath, destDir string) (string, error) {
	if strings.HasSuffix(archivePath, ".zip") {
		return extractFromZip(archivePath, destDir)
	}
	return extractFromTarGz(archivePath, destDir)
}

func binaryNames() (string, string) {
	name := branding.CLIName()
	return name, name + ".exe"
}

func extractFromTarGz(archivePath, destDir string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	binName, binNameExe := binaryNames()
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading tar entry: %w", err)
		}

		base := filepath.Base(hdr.Name)
		if base != binName && base != binNameExe {
			continue
		}
		destPath := filepath.Join(destDir, base)
		out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY, 0755)
		if err != nil {
			return "", fmt.Errorf("creating binary file: %w", err)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return "", fmt.Errorf("extracting binary: %w", err)
		}
		out.Close()
		return destPath, nil
	}

	return "", fmt.Errorf("%s binary not found in archive", binName)
}

func extractFromZip(archivePath, destDir string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	binName, binNameExe := binaryNames()
	for _, f := range r.File {
		base := filepath.Base(f.Name)
		if base != binName && base != binNameExe {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening zip entry: %w", err)
		}

		destPath := filepath.Join(destDir, base)
		out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY, 0755)
		if err != nil {
			rc.Close()
			return "", fmt.Errorf("creating binary file: %w", err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			out.Close()
			rc.Close()
			return "", fmt.Errorf("extracting binary: %w", err)
		}
		out.Close()
		rc.Close()
		return destPath, nil
	}

	return "", fmt.Errorf("%s binary not found in zip archive", binName)
}

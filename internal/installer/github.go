package installer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"setup-hooks/internal/config"
	"setup-hooks/internal/logger"
)

// GitHubRelease represents the structure of a GitHub release JSON response.
type GitHubRelease struct {
	TagName string         `json:"tag_name"` // The release tag (e.g., v1.0.0)
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is a single downloadable file attached to a release.
type ReleaseAsset struct {
	Name               string `json:"name"`                 // Asset filename
	BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
}

// archiveSuffixes are the asset formats the extractor understands.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// downloadFromGitHub installs the hook manager from a GitHub release:
// it fetches the release metadata, picks the asset matching the local
// OS/architecture, downloads and extracts it, then copies the manager binary
// into a local bin directory. It returns the installed executable path.
func downloadFromGitHub(m config.Manager, inst config.Installer) (string, error) {
	if inst.Repo == "" {
		return "", fmt.Errorf("github installer for %s has no repo configured", m.Name)
	}
	tag := inst.Tag
	if tag == "" {
		tag = "v" + strings.TrimPrefix(m.Version, "v")
	}

	// Fetch the release metadata from the GitHub API
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", inst.Repo, tag)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching release %s@%s: %w", inst.Repo, tag, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("GitHub release fetch failed for %s@%s: HTTP status %d", inst.Repo, tag, resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON for %s@%s: %w", inst.Repo, tag, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))

	// Pick the asset matching the local platform
	assetURL, assetName := matchAsset(release, runtime.GOOS, runtime.GOARCH)
	if assetURL == "" {
		return "", fmt.Errorf("no matching asset for OS=%s ARCH=%s in release %s", runtime.GOOS, runtime.GOARCH, release.TagName)
	}

	// Download the asset into a scratch directory
	tmpDir, err := os.MkdirTemp("", "setup-hooks-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	archivePath := filepath.Join(tmpDir, path.Base(assetURL))
	logger.Info("[INFO] Downloading asset %s\n", assetName)
	if err := downloadFile(assetURL, archivePath); err != nil {
		return "", err
	}

	// Extract the archive and locate the manager binary inside it
	extracted, err := ExtractArchive(archivePath, tmpDir)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", assetName, err)
	}
	binary, err := FindBinary(extracted, m.Name)
	if err != nil {
		return "", err
	}

	// Place the binary into a bin directory: /usr/local/bin when writable,
	// otherwise ~/.local/bin.
	installed, err := installBinary(binary)
	if err != nil {
		return "", err
	}
	logger.Info("[INFO] Installed %s\n", installed)
	return installed, nil
}

// matchAsset searches the release assets for an archive whose name matches
// the given OS and architecture (including common aliases like x86_64 for
// amd64 and aarch64 for arm64). Returns the download URL and asset name, or
// empty strings when nothing matches.
func matchAsset(release GitHubRelease, goos, goarch string) (string, string) {
	osAliases := map[string][]string{
		"darwin":  {"darwin", "macos", "mac_os", "osx"},
		"linux":   {"linux"},
		"windows": {"windows", "win64"},
	}
	archAliases := map[string][]string{
		"amd64": {"amd64", "x86_64", "x64"},
		"arm64": {"arm64", "aarch64"},
		"386":   {"386", "i386", "x86"},
	}

	osNames := osAliases[goos]
	if osNames == nil {
		osNames = []string{goos}
	}
	archNames := archAliases[goarch]
	if archNames == nil {
		archNames = []string{goarch}
	}

	for _, asset := range release.Assets {
		name := strings.ToLower(asset.Name)
		logger.Debug("[DEBUG] Considering asset: %s\n", asset.Name)
		if !hasArchiveSuffix(name) {
			continue
		}
		if containsAny(name, osNames) && containsAny(name, archNames) {
			logger.Debug("[DEBUG] Found matching asset: %s\n", asset.Name)
			return asset.BrowserDownloadURL, asset.Name
		}
	}
	return "", ""
}

func hasArchiveSuffix(name string) bool {
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// downloadFile downloads the content located at the specified URL and saves
// it to the destination path.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != 200 {
		return fmt.Errorf("failed to GET %s: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded asset to: %s\n", destPath)
	return nil
}

// installBinary copies the extracted binary into the first usable bin
// directory and marks it executable. /usr/local/bin is preferred; when it is
// not writable the binary goes to ~/.local/bin, which is created if needed.
func installBinary(binary string) (string, error) {
	dst := filepath.Join("/usr/local/bin", filepath.Base(binary))
	if err := copyBinary(binary, dst); err == nil {
		return dst, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	localBin := filepath.Join(home, ".local", "bin")
	if err := os.MkdirAll(localBin, 0755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", localBin, err)
	}
	dst = filepath.Join(localBin, filepath.Base(binary))
	if err := copyBinary(binary, dst); err != nil {
		return "", fmt.Errorf("failed to install binary to %s: %w", dst, err)
	}
	return dst, nil
}

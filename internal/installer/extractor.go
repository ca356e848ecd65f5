package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data
	"setup-hooks/internal/logger"
)

// ExtractArchive extracts the archive at src into dest and returns the path
// of the extracted top-level entry. The format is chosen by file suffix.
func ExtractArchive(src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		return extractZip(src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is 7z\n")
		return extract7z(src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is tar\n")
		return extractTarArchive(src, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// extractTarArchive handles tar and its gzip/bzip2/xz compressed variants.
func extractTarArchive(src, dest string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	var topLevel string

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break // End of archive
		}
		if err != nil {
			return "", err
		}

		// Capture the top-level entry name to report back to the caller
		if topLevel == "" {
			topLevel = firstPathSegment(hdr.Name)
		}

		target, err := safeTarget(dest, hdr.Name)
		if err != nil {
			return "", err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, hdr.FileInfo().Mode()); err != nil {
				return "", err
			}
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// extractZip extracts a .zip archive.
func extractZip(src, dest string) (string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var topLevel string
	for _, f := range r.File {
		if topLevel == "" {
			topLevel = firstPathSegment(f.Name)
		}
		target, err := safeTarget(dest, f.Name)
		if err != nil {
			return "", err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		err = writeFile(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// extract7z handles .7z extraction using the sevenzip library.
func extract7z(src, dest string) (string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	var topLevel string
	for _, f := range r.File {
		if topLevel == "" {
			topLevel = firstPathSegment(f.Name)
		}
		target, err := safeTarget(dest, f.Name)
		if err != nil {
			return "", err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, f.Mode()); err != nil {
				return "", err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		err = writeFile(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// writeFile creates target (and any missing parent directories) and copies r
// into it with the given mode.
func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// safeTarget joins an archive entry name onto dest, rejecting entries that
// would escape the extraction directory (absolute paths or .. components in
// a crafted archive).
func safeTarget(dest, name string) (string, error) {
	clean := strings.TrimSuffix(strings.TrimPrefix(name, "./"), "/")
	if clean == "" || clean == "." {
		// Archives commonly carry a bare "./" entry for the root itself
		return dest, nil
	}
	if !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", fmt.Errorf("archive entry escapes extraction directory: %s", name)
	}
	return filepath.Join(dest, name), nil
}

// firstPathSegment returns the first segment of a slash-separated archive
// entry name.
func firstPathSegment(name string) string {
	name = strings.TrimPrefix(name, "./")
	if i := strings.IndexRune(name, '/'); i > 0 {
		return name[:i]
	}
	return name
}

// FindBinary locates the manager executable inside an extracted archive.
// Unlike a general tool scanner we know the exact binary name, so the match
// is on the base name (allowing a .exe suffix for Windows assets).
func FindBinary(root, name string) (string, error) {
	// The archive may extract to the binary file directly
	if info, err := os.Stat(root); err == nil && info.Mode().IsRegular() {
		base := filepath.Base(root)
		if base == name || base == name+".exe" {
			return root, nil
		}
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		base := filepath.Base(path)
		if base == name || base == name+".exe" {
			logger.Debug("[DEBUG] Found binary: %s\n", path)
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no %s binary found in %s", name, root)
	}
	return found, nil
}

// copyBinary copies a file to dst with executable permissions, creating the
// destination's parent directory if needed.
func copyBinary(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

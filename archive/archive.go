package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

var ErrNotSole = errors.New("archive does not contain a single file")

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// IsZip sniffs path for the zip local-file-header magic.
func IsZip(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	var hdr [4]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return false
	}
	return bytes.Equal(hdr[:], zipMagic)
}

// ExtractSole extracts the only file in the archive at zipPath to
// destPath. Zero or more than one member is an error.
func ExtractSole(zipPath, destPath string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()

	var files []*zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, f)
	}
	if len(files) != 1 {
		return fmt.Errorf("%w: %d entries", ErrNotSole, len(files))
	}
	return writeMember(files[0], destPath)
}

// ExtractPrefix extracts every file member under prefix into destDir,
// flattening member paths to their base names. It returns the
// extracted paths.
func ExtractPrefix(zipPath, prefix, destDir string) ([]string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var out []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		dest := filepath.Join(destDir, filepath.Base(f.Name))
		if err := writeMember(f, dest); err != nil {
			return nil, err
		}
		out = append(out, dest)
	}
	return out, nil
}

func writeMember(f *zip.File, dest string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	w, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

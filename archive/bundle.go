// Package archive gives uniform read access to fragment files kept either in
// a directory or in a zip archive (CI artifact, for example).
package archive

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Bundle is a read only set of fragment files.
type Bundle struct {
	location string
	zr       *zip.ReadCloser
}

// IsArchive reports whether location names zip archive rather than directory.
func IsArchive(location string) bool {
	return strings.EqualFold(filepath.Ext(location), ".zip")
}

// Open prepares bundle for reading. Zip archives are checked for unsafe
// entries up front, directories are not checked at all - missing files are
// reported by ReadFile.
func Open(location string) (*Bundle, error) {
	b := &Bundle{location: location}
	if !IsArchive(location) {
		return b, nil
	}

	// refuse archives which could not be unpacked safely
	if err := Walk(location, "", func(string, *zip.File) error { return nil }); err != nil {
		return nil, fmt.Errorf("unable to use bundle %q: %w", location, err)
	}
	zr, err := zip.OpenReader(location)
	if err != nil {
		return nil, fmt.Errorf("unable to open bundle %q: %w", location, err)
	}
	b.zr = zr
	return b, nil
}

// Close releases archive, it is a no-op for directories.
func (b *Bundle) Close() error {
	if b == nil || b.zr == nil {
		return nil
	}
	return b.zr.Close()
}

// Location returns path under which file could be found, for archives it is
// "archive.zip!name".
func (b *Bundle) Location(name string) string {
	if b.zr == nil {
		return filepath.Join(b.location, name)
	}
	return b.location + "!" + entryName(name)
}

// ReadFile returns content of the named file. Errors for absent files wrap
// fs.ErrNotExist.
func (b *Bundle) ReadFile(name string) ([]byte, error) {
	if b.zr == nil {
		return os.ReadFile(filepath.Join(b.location, name))
	}
	return fs.ReadFile(b.zr, entryName(name))
}

// entryName converts configured file name to archive entry name.
func entryName(name string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "./")
}

// WalkFunc is called for each file in archive visited by Walk. If an error is
// returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits all files in the archive with names starting with prefix.
// Archives with absolute or parent referencing entries are rejected.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

package rowan

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileSystem is the read-only asset source the resource loader pulls from.
// Paths are slash-separated and relative to the game root.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// DirFS reads assets from a directory on the local filesystem.
type DirFS struct {
	Root string
}

// ReadFile reads the named file under the root directory. Paths escaping the
// root are rejected.
func (d DirFS) ReadFile(name string) ([]byte, error) {
	clean := path.Clean("/" + name)[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return nil, fmt.Errorf("read %q: invalid path", name)
	}
	return os.ReadFile(filepath.Join(d.Root, filepath.FromSlash(clean)))
}

// MapFS is an in-memory filesystem, mainly for tests and embedded assets.
type MapFS map[string][]byte

// ReadFile returns the stored bytes for name.
func (m MapFS) ReadFile(name string) ([]byte, error) {
	data, ok := m[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("read %q: %w", name, os.ErrNotExist)
	}
	return data, nil
}

// ZipFS reads assets out of an in-memory zip bundle.
type ZipFS struct {
	files map[string]*zip.File
}

// NewZipFS opens a zip archive held in memory.
func NewZipFS(data []byte) (*ZipFS, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[path.Clean(f.Name)] = f
	}
	return &ZipFS{files: files}, nil
}

// ReadFile decompresses and returns the named archive entry.
func (z *ZipFS) ReadFile(name string) ([]byte, error) {
	f, ok := z.files[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("read %q: %w", name, os.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	return data, nil
}

// BundleName is the packed-game archive probed for by Detect.
const BundleName = "bundle.rowan"

// ManifestName is the project manifest file within a game root.
const ManifestName = "game.yaml"

// Detect figures out how a game in dir is stored. A packed bundle next to
// the binary wins over loose files. The returned manifest falls back to
// defaults when the manifest file is absent or malformed; in the malformed
// case the parse error is returned alongside the usable defaults.
func Detect(dir string) (FileSystem, *Manifest, error) {
	if data, err := os.ReadFile(filepath.Join(dir, BundleName)); err == nil {
		zfs, err := NewZipFS(data)
		if err != nil {
			return nil, nil, err
		}
		return detectManifest(zfs)
	}
	return detectManifest(DirFS{Root: dir})
}

func detectManifest(fs FileSystem) (FileSystem, *Manifest, error) {
	data, err := fs.ReadFile(ManifestName)
	if err != nil {
		return fs, DefaultManifest(), nil
	}
	m, err := ParseManifest(data)
	if err != nil {
		return fs, DefaultManifest(), err
	}
	return fs, m, nil
}

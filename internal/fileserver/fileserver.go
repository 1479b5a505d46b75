// Package fileserver serves files from a base directory without letting a
// request escape it.
package fileserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("file does not exist")
)

type FileServer struct {
	baseDir string
}

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	return f.baseDir
}

// cleanPath joins path onto baseDir and returns the absolute result. Paths
// that would resolve outside of baseDir are rejected with ErrInvalidPath.
func cleanPath(baseDir, path string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}

	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, path)
	}

	full := filepath.Join(absBase, filepath.Clean(path))
	rel, err := filepath.Rel(absBase, full)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes base directory", ErrInvalidPath, path)
	}
	return full, nil
}

// Exists reports whether path names a regular file under the base directory.
func (f *FileServer) Exists(path string) (bool, error) {
	if f == nil {
		return false, nil
	}
	full, err := cleanPath(f.baseDir, path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("checking file: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Open returns the regular file at path.
func (f *FileServer) Open(path string) (*os.File, os.FileInfo, error) {
	full, err := cleanPath(f.baseDir, path)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, ErrNotExist
	} else if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, nil, ErrNotExist
	}
	return file, info, nil
}

// Handler serves files read-only. Request paths are taken relative to the
// base directory, so mount it behind http.StripPrefix.
func (f *FileServer) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		file, info, err := f.Open(strings.TrimPrefix(r.URL.Path, "/"))
		if errors.Is(err, ErrInvalidPath) || errors.Is(err, ErrNotExist) {
			http.NotFound(w, r)
			return
		} else if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer func() { _ = file.Close() }()

		http.ServeContent(w, r, info.Name(), info.ModTime(), file)
	})
}

package filestore

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/matt-dz/recipematch/internal/fileserver"
)

const (
	magicNumberSeek = 512
)

// allowedImageTypes lists the simple MIME types we serve as recipe images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrImageNotFound       = errors.New("image not found")
)

// ImageType sniffs the content type of a local image reference. Absolute
// URLs are not inspected and return an empty type.
func (f FileStore) ImageType(ref string) (string, error) {
	if isAbsoluteURL(ref) {
		return "", nil
	}
	if f.fs == nil {
		return "", fmt.Errorf("%q: %w", ref, ErrImageNotFound)
	}

	file, _, err := f.fs.Open(f.relativePath(ref))
	if errors.Is(err, fileserver.ErrNotExist) {
		return "", fmt.Errorf("%q: %w", ref, ErrImageNotFound)
	} else if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	head := make([]byte, magicNumberSeek)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading image: %w", err)
	}

	contentType := http.DetectContentType(head[:n])
	if !allowedImageTypes[contentType] {
		return contentType, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}
	return contentType, nil
}

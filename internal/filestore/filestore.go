// Package filestore maps recipe image references onto the file server.
package filestore

import (
	"net/http"
	"strings"

	"github.com/matt-dz/recipematch/internal/fileserver"
)

const (
	DefaultURLPrefix = "/files"
)

type FileStore struct {
	urlPathPrefix string
	host          string
	fs            *fileserver.FileServer
}

func New(baseDirectory, urlPathPrefix, host string) FileStore {
	if urlPathPrefix == "" {
		urlPathPrefix = DefaultURLPrefix
	}
	return FileStore{
		urlPathPrefix: "/" + strings.Trim(urlPathPrefix, "/"),
		host:          strings.TrimRight(host, "/"),
		fs:            fileserver.New(baseDirectory),
	}
}

func (f FileStore) URLPrefix() string {
	return f.urlPathPrefix
}

// FileURL turns an image reference into an absolute URL. Absolute http(s)
// references are returned unchanged; anything else is a path relative to
// the file server, with or without the URL prefix.
func (f FileStore) FileURL(ref string) string {
	if isAbsoluteURL(ref) {
		return ref
	}
	return f.host + f.urlPathPrefix + "/" + f.relativePath(ref)
}

// ResolveImage applies FileURL to an optional reference.
func (f FileStore) ResolveImage(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	u := f.FileURL(*ref)
	return &u
}

// Exists reports whether a local image reference names a file on disk.
// Absolute URLs are assumed to exist.
func (f FileStore) Exists(ref string) (bool, error) {
	if isAbsoluteURL(ref) {
		return true, nil
	}
	return f.fs.Exists(f.relativePath(ref))
}

// Handler serves the file server's contents under URLPrefix.
func (f FileStore) Handler() http.Handler {
	return http.StripPrefix(f.urlPathPrefix, f.fs.Handler())
}

func (f FileStore) relativePath(ref string) string {
	p := strings.TrimLeft(ref, "/")
	prefix := strings.Trim(f.urlPathPrefix, "/")
	if rest, ok := strings.CutPrefix(p, prefix+"/"); ok {
		p = rest
	}
	return p
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

package filestore

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-dz/recipematch/internal/fileserver"
)

func newTestFileStore(t *testing.T) (FileStore, string) {
	t.Helper()
	baseDir := t.TempDir()
	return New(baseDir, DefaultURLPrefix, "http://localhost:8080"), baseDir
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		host       string
		wantPrefix string
		wantHost   string
	}{
		{
			name:       "plain",
			prefix:     "/files",
			host:       "http://localhost:8080",
			wantPrefix: "/files",
			wantHost:   "http://localhost:8080",
		},
		{
			name:       "host with trailing slash",
			prefix:     "/files",
			host:       "http://localhost:8080/",
			wantPrefix: "/files",
			wantHost:   "http://localhost:8080",
		},
		{
			name:       "prefix with trailing slash",
			prefix:     "images/",
			host:       "https://example.com",
			wantPrefix: "/images",
			wantHost:   "https://example.com",
		},
		{
			name:       "empty prefix",
			prefix:     "",
			host:       "https://example.com",
			wantPrefix: DefaultURLPrefix,
			wantHost:   "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(t.TempDir(), tt.prefix, tt.host)
			if store.URLPrefix() != tt.wantPrefix {
				t.Errorf("URLPrefix() = %q, want %q", store.URLPrefix(), tt.wantPrefix)
			}
			if store.host != tt.wantHost {
				t.Errorf("host = %q, want %q", store.host, tt.wantHost)
			}
		})
	}
}

func TestFileURL(t *testing.T) {
	store, _ := newTestFileStore(t)

	tests := []struct {
		ref  string
		want string
	}{
		{ref: "recipes/shrimp.jpg", want: "http://localhost:8080/files/recipes/shrimp.jpg"},
		{ref: "/recipes/shrimp.jpg", want: "http://localhost:8080/files/recipes/shrimp.jpg"},
		{ref: "files/recipes/shrimp.jpg", want: "http://localhost:8080/files/recipes/shrimp.jpg"},
		{ref: "/files/recipes/shrimp.jpg", want: "http://localhost:8080/files/recipes/shrimp.jpg"},
		{ref: "filesystem/shrimp.jpg", want: "http://localhost:8080/files/filesystem/shrimp.jpg"},
		{ref: "https://cdn.example.com/shrimp.jpg", want: "https://cdn.example.com/shrimp.jpg"},
		{ref: "http://cdn.example.com/shrimp.jpg", want: "http://cdn.example.com/shrimp.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := store.FileURL(tt.ref); got != tt.want {
				t.Errorf("FileURL(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveImage(t *testing.T) {
	store, _ := newTestFileStore(t)

	if got := store.ResolveImage(nil); got != nil {
		t.Errorf("ResolveImage(nil) = %q, want nil", *got)
	}
	empty := ""
	if got := store.ResolveImage(&empty); got != nil {
		t.Errorf("ResolveImage(\"\") = %q, want nil", *got)
	}
	ref := "recipes/shrimp.jpg"
	got := store.ResolveImage(&ref)
	if got == nil || *got != "http://localhost:8080/files/recipes/shrimp.jpg" {
		t.Errorf("ResolveImage(%q) = %v", ref, got)
	}
}

func TestExists(t *testing.T) {
	store, baseDir := newTestFileStore(t)
	if err := os.MkdirAll(filepath.Join(baseDir, "recipes"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(baseDir, "recipes", "shrimp.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	tests := []struct {
		ref     string
		want    bool
		wantErr error
	}{
		{ref: "recipes/shrimp.jpg", want: true},
		{ref: "/files/recipes/shrimp.jpg", want: true},
		{ref: "recipes/salad.jpg", want: false},
		{ref: "https://cdn.example.com/salad.jpg", want: true},
		{ref: "../etc/passwd", wantErr: fileserver.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := store.Exists(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Exists(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Exists(%q) unexpected error: %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	store, baseDir := newTestFileStore(t)
	if err := os.WriteFile(filepath.Join(baseDir, "salad.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	rec := httptest.NewRecorder()
	store.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/salad.png", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "png" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "png")
	}
}

func TestImageType(t *testing.T) {
	store, baseDir := newTestFileStore(t)
	files := map[string][]byte{
		"salad.png":  []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
		"toast.gif":  []byte("GIF89a"),
		"readme.jpg": []byte("not really a picture"),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(baseDir, name), data, 0o644); err != nil {
			t.Fatalf("writing file: %v", err)
		}
	}

	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{ref: "salad.png", want: "image/png"},
		{ref: "/files/toast.gif", want: "image/gif"},
		{ref: "readme.jpg", want: "text/plain; charset=utf-8", wantErr: ErrUnsupportedMimeType},
		{ref: "missing.jpg", wantErr: ErrImageNotFound},
		{ref: "https://cdn.example.com/salad.jpg"},
		{ref: "../etc/passwd", wantErr: fileserver.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := store.ImageType(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ImageType(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("ImageType(%q) unexpected error: %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ImageType(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestImageType_ZeroValue(t *testing.T) {
	var store FileStore
	if _, err := store.ImageType("salad.png"); !errors.Is(err, ErrImageNotFound) {
		t.Errorf("ImageType() error = %v, want %v", err, ErrImageNotFound)
	}
}

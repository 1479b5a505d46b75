package fileserver

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestFileServer(t *testing.T) (*FileServer, string) {
	t.Helper()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "recipes"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "recipes", "shrimp.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	return New(base), base
}

func TestCleanPath_Valid(t *testing.T) {
	baseDir := filepath.Join("testdata", "base")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "simple relative path",
			path:     "images/foo.png",
			expected: filepath.Join("images", "foo.png"),
		},
		{
			name:     "path with dot segments",
			path:     "./images/./foo.png",
			expected: filepath.Join("images", "foo.png"),
		},
		{
			name:     "path with inner dot-dot but still inside",
			path:     "images/2025/../foo.png",
			expected: filepath.Join("images", "foo.png"),
		},
		{
			name:     "empty path resolves to base",
			path:     "",
			expected: ".",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cleanPath(baseDir, tt.path)
			if err != nil {
				t.Fatalf("cleanPath() returned unexpected error: %v", err)
			}

			absBase, err := filepath.Abs(baseDir)
			if err != nil {
				t.Fatalf("failed to get abs base: %v", err)
			}
			want := filepath.Join(absBase, tt.expected)
			if got != want {
				t.Fatalf("cleanPath() = %q, want %q", got, want)
			}
		})
	}
}

func TestCleanPath_Invalid(t *testing.T) {
	baseDir := filepath.Join("testdata", "base")

	tests := []struct {
		name string
		path string
	}{
		{
			name: "starts with dot-dot",
			path: "../secret.txt",
		},
		{
			name: "cleaned becomes dot-dot",
			path: "foo/../../secret.txt",
		},
		{
			name: "absolute path",
			path: filepath.Join(string(filepath.Separator), "etc", "passwd"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cleanPath(baseDir, tt.path)
			if err == nil {
				t.Fatalf("cleanPath(%q) = %q, expected error", tt.path, got)
			}
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("cleanPath(%q) error = %v, want ErrInvalidPath", tt.path, err)
			}
		})
	}
}

func TestExists(t *testing.T) {
	fs, _ := newTestFileServer(t)

	tests := []struct {
		name    string
		path    string
		want    bool
		wantErr error
	}{
		{name: "existing file", path: "recipes/shrimp.jpg", want: true},
		{name: "missing file", path: "recipes/salad.jpg", want: false},
		{name: "directory", path: "recipes", want: false},
		{name: "escaping path", path: "../shrimp.jpg", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Exists(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Exists(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Exists(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExists_NilReceiver(t *testing.T) {
	var fs *FileServer
	ok, err := fs.Exists("anything")
	if ok || err != nil {
		t.Fatalf("Exists() on nil receiver = %v, %v; want false, nil", ok, err)
	}
}

func TestHandler(t *testing.T) {
	fs, _ := newTestFileServer(t)
	handler := http.StripPrefix("/files", fs.Handler())

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "serves file",
			method:     http.MethodGet,
			target:     "/files/recipes/shrimp.jpg",
			wantStatus: http.StatusOK,
			wantBody:   "jpeg",
		},
		{
			name:       "missing file",
			method:     http.MethodGet,
			target:     "/files/recipes/salad.jpg",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "directory listing is not served",
			method:     http.MethodGet,
			target:     "/files/recipes",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "writes are rejected",
			method:     http.MethodPut,
			target:     "/files/recipes/shrimp.jpg",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(rec.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}

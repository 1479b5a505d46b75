package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/matt-dz/recipematch/internal/log"
)

func TestFetch(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/catalog.json":
			_, _ = w.Write([]byte(`{"recipes": []}`))
		case "/flaky":
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("ok"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := DefaultConfig(log.NullLogger())
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0
	h := New(client)

	tests := []struct {
		name      string
		path      string
		want      string
		wantError bool
	}{
		{name: "success", path: "/catalog.json", want: `{"recipes": []}`},
		{name: "retries server errors", path: "/flaky", want: "ok"},
		{name: "not found", path: "/missing", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := h.Fetch(context.Background(), server.URL+tt.path)
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if string(body) != tt.want {
				t.Errorf("Fetch() = %q, want %q", body, tt.want)
			}
		})
	}
}

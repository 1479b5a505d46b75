package error

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestEncodeError(t *testing.T) {
	tests := []struct {
		name       string
		code       ErrorCode
		wantStatus int
	}{
		{name: "bad request", code: BadRequest, wantStatus: http.StatusBadRequest},
		{name: "recipe not found", code: RecipeNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", code: AlreadyFavourited, wantStatus: http.StatusConflict},
		{name: "rate limited", code: TooManyRequests, wantStatus: http.StatusTooManyRequests},
		{name: "unmapped code falls back to 500", code: UnknownError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := EncodeError(rec, tt.code, "message", "123"); err != nil {
				t.Fatalf("EncodeError() error = %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body Error
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Code != tt.code || body.Status != tt.wantStatus || body.ErrorID != "123" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestEncodeInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := EncodeInternalError(rec, "42"); err != nil {
		t.Fatalf("EncodeInternalError() error = %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

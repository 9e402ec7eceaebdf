package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		values []string
		want   string
	}{
		{"Authorization", []string{"Bearer secret-token"}, redactedValue},
		{"X-Api-Key", []string{"wh-key-1"}, redactedValue},
		{"Cookie", []string{"session=abc123"}, redactedValue},
		{"Set-Cookie", []string{"session=abc"}, redactedValue},
		// Address parts mirror the sensitive log fields.
		{"Postal-Code", []string{"10115"}, redactedValue},
		{"Street", []string{"Unter den Linden 1"}, redactedValue},
		{"Email", []string{"ada@example.com"}, redactedValue},
		{"Content-Type", []string{"application/json"}, "application/json"},
		{"Accept", []string{"application/problem+json", "application/json"}, "application/problem+json,application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.header: tt.values})
			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.header {
				t.Errorf("key = %q, want %q", attrs[0].Key, tt.header)
			}
			if got := attrs[0].Value.String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer order-admin-token")
	req.Header.Set("Postal-Code", "10115")
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, secret := range []string{"order-admin-token", "10115"} {
		if strings.Contains(out, secret) {
			t.Errorf("log output contains %q, want it redacted", secret)
		}
	}
	if !strings.Contains(out, "application/json") {
		t.Errorf("log output = %q, want non-sensitive headers kept", out)
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
)

// sensitiveHeaders lists credential-bearing headers (lowercase) that are not
// covered by logging.SensitiveFields.
var sensitiveHeaders = map[string]bool{
	"x-api-key":  true,
	"cookie":     true,
	"set-cookie": true,
}

// isSensitiveHeader reports whether a header must be redacted. Header names
// are also matched against logging.SensitiveFields in snake case, so
// "Postal-Code" is treated like the postal_code log field.
func isSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	if sensitiveHeaders[lower] {
		return true
	}
	return logging.SensitiveFields[strings.ReplaceAll(lower, "-", "_")]
}

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging. Sensitive headers are replaced with
// "[REDACTED]"; all others are included as-is. Multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if isSensitiveHeader(key) {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}

package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the set of attribute keys whose values never reach log
// output. Order events carry customer addresses, so the street and postal code
// are treated as personal data alongside credentials.
var SensitiveFields = map[string]bool{
	"authorization": true,
	"password":      true,
	"secret":        true,
	"token":         true,
	"email":         true,
	"phone":         true,
	"street":        true,
	"postal_code":   true,
	"card_number":   true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// cardPattern matches 13 to 19 digit card numbers, optionally grouped by
// spaces or dashes.
var cardPattern = regexp.MustCompile(`\b(?:\d[ \-]?){12,18}\d\b`)

// fixedRedactOptions is the number of masq options beyond the
// SensitiveFields set (1 prefix + 3 regexes).
const fixedRedactOptions = 4

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveFields))

	for name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		// Prefix-based redaction for variations like "secret_key".
		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(cardPattern),
	)

	return masq.New(opts...)
}

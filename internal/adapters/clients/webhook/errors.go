package webhook

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrDelivery is returned when the receiver did not accept an event.
var ErrDelivery = errors.New("webhook delivery failed")

// maxErrorBodySize limits how much of a rejection body is quoted.
const maxErrorBodySize = 512

// translateStatus maps a non-2xx receiver response to an ErrDelivery error
// quoting the start of the response body.
func translateStatus(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	detail := strings.TrimSpace(string(b))
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("%w: status %d: %s", ErrDelivery, resp.StatusCode, detail)
}

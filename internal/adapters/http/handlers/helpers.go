package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/dto"
)

// parseID extracts a positive int path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(param, "must be a valid integer")
	}
	if id <= 0 {
		return 0, domain.NewValidationError(param, domain.MsgPositive)
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that only need checking.
type validatable interface {
	Validate() error
}

// converter is implemented by request DTOs that validate into a value object.
type converter[V any] interface {
	Validate() (V, error)
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeAndConvert decodes the JSON request body into dst and returns the
// value object it validates into. On failure it writes an error response and
// returns false.
func decodeAndConvert[V any, T converter[V]](w http.ResponseWriter, r *http.Request, dst T) (V, bool) {
	var zero V
	if !decodeJSONBody(w, r, dst) {
		return zero, false
	}
	v, err := dst.Validate()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return zero, false
	}
	return v, true
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/adapters/http/dto"
	"github.com/forgeline/heavyshop/internal/domain"
)

// parseUUID extracts a UUID path parameter from the chi URL params.
func parseUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
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
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
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

// parseBodyUUID parses a UUID carried in a request body field, reporting the
// failure against that field name.
func parseBodyUUID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{field: "must be a valid UUID"},
		}
	}
	return id, nil
}

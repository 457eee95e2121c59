package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
)

// getPathID extracts a positive integer primary key from the URL path.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts the primary key from the path and writes a 422
// response when it is invalid. The bool reports whether the handler may go on.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		handleAPIError(w, r, err, errorMessages{})
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it. On
// failure it writes a 422 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		handleAPIError(w, r, err, errorMessages{})
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		handleAPIError(w, r, err, errorMessages{})
		return false
	}
	return true
}

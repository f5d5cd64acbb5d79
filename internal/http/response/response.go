package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobboard/internal/common"
)

type errorBody struct {
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// Error maps a tagged domain error to a status code and a body carrying only
// the message (and field errors for validation failures), never internals.
func Error(w http.ResponseWriter, err error) {
	var domainErr *common.Error
	if !errors.As(err, &domainErr) {
		JSON(w, http.StatusInternalServerError, errorBody{Message: "internal server error"})
		return
	}
	JSON(w, statusFor(domainErr.Code), errorBody{Errors: domainErr.Fields, Message: domainErr.Message})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeConflict:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

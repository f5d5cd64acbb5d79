package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobboard/internal/app"
	"jobboard/internal/common"
	"jobboard/internal/http/middleware"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath extracts the path segment at index (zero-based, leading slash
// stripped) and parses it as a UUID.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(segments) {
		return "", common.NewError(common.CodeValidation, "invalid path", nil)
	}
	parsed, err := common.ParseUUID(segments[index])
	if err != nil {
		return "", common.NewError(common.CodeValidation, "invalid id", err)
	}
	return parsed, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

func principalFromRequest(r *http.Request) (app.Principal, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return app.Principal{}, false
	}
	role, _ := middleware.RoleFromContext(r.Context())
	return app.Principal{ID: userID, Role: role}, true
}

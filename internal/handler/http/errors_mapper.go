package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// errorStatusMap maps sentinel errors to response status codes. An error
// chain must match at most one entry.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidTaskID: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrMissingToken:        http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusForbidden,
	service.ErrTokenIsExpired:      http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:    http.StatusForbidden,
	store.ErrTaskNotFound:      http.StatusNotFound,
	store.ErrPersistence:       http.StatusInternalServerError,
}

// statusFromError returns the status code and the client-facing message for
// err. Unknown errors become 500 with a generic message so internal details
// are not leaked.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return status, http.StatusText(status)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped {"error": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

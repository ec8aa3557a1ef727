package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
)

type apiError struct {
	status  int
	message string
}

var errorStatusMap = map[error]apiError{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenCreationFailed:     {http.StatusInternalServerError, app.MsgInternalServerError},

	store.ErrLoginAlreadyExists: {http.StatusConflict, app.MsgLoginAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	store.ErrFileNotFound:       {http.StatusNotFound, app.MsgFileNotFound},
	store.ErrBuildingSQLQuery:   {http.StatusInternalServerError, app.MsgInternalServerError},
}

func apiErrorFrom(err error) apiError {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return apiError{http.StatusRequestEntityTooLarge, app.MsgFileTooLarge}
	}

	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return apiError{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return apiErrorFrom(err).status
}

// writeError answers with the status and message mapped from err. The error
// chain itself never reaches the response body.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	mapped := apiErrorFrom(err)
	utils.WriteError(w, mapped.message, mapped.status)
}

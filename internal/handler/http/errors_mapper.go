package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; storage failures come first because
// they may be wrapped together with a domain error.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},
	{store.ErrRecordCorrupted, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},

	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrUnknownUser, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentialsOrAccess}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentialsOrAccess}},
	{service.ErrCertificateInvalidOrRevoked, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentialsOrAccess}},
	{service.ErrChallengeExpired, errorResponse{http.StatusUnauthorized, app.MsgChallengeExpired}},
	{service.ErrChallengeAlreadyUsed, errorResponse{http.StatusUnauthorized, app.MsgChallengeAlreadyUsed}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrAdminDisabled, errorResponse{http.StatusNotFound, app.MsgAdminDisabled}},
	{service.ErrUserAlreadyExists, errorResponse{http.StatusConflict, app.MsgUserAlreadyExists}},
	{service.ErrCertificateAlreadyIssued, errorResponse{http.StatusConflict, app.MsgCertificateAlreadyIssued}},
	{service.ErrCertificateNotFound, errorResponse{http.StatusNotFound, app.MsgCertificateNotFound}},
	{service.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},

	{store.ErrIdentityExists, errorResponse{http.StatusConflict, app.MsgUserAlreadyExists}},
	{store.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},

	{crypto.ErrAuthenticationFailure, errorResponse{http.StatusInternalServerError, app.MsgNoteIntegrity}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError maps err onto a status and a stable message and logs it with
// the request logger.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	http.Error(w, resp.message, resp.status)
}

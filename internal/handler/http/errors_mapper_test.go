package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "unknown user hides behind generic 401", err: service.ErrUnknownUser, wantStatus: http.StatusUnauthorized, wantMessage: app.MsgInvalidCredentialsOrAccess},
		{name: "wrapped wrong password", err: fmt.Errorf("login: %w", service.ErrInvalidCredentials), wantStatus: http.StatusUnauthorized, wantMessage: app.MsgInvalidCredentialsOrAccess},
		{name: "duplicate identity from the store", err: store.ErrIdentityExists, wantStatus: http.StatusConflict, wantMessage: app.MsgUserAlreadyExists},
		{name: "storage wins over domain error", err: errors.Join(service.ErrNoteNotFound, store.ErrStorageUnavailable), wantStatus: http.StatusServiceUnavailable, wantMessage: app.MsgStorageUnavailable},
		{name: "corrupted row", err: store.ErrRecordCorrupted, wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
		{name: "unmapped error", err: errors.New("unexpected"), wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMessage, resp.message)
		})
	}
}

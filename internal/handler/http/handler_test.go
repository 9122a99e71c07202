package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/mock"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	identity *mock.MockIdentityFacade
	notes    *mock.MockNoteService
	admin    *mock.MockAdminService
}

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		identity: mock.NewMockIdentityFacade(ctrl),
		notes:    mock.NewMockNoteService(ctrl),
		admin:    mock.NewMockAdminService(ctrl),
	}
	services := &service.Services{
		Identity: m.identity,
		Notes:    m.notes,
		Admin:    m.admin,
	}
	return NewHandler(services, logger.Nop()), m
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// withUser mimics what basicAuth stores for authenticated requests.
func withUser(r *http.Request, username string, key []byte) *http.Request {
	ctx := utils.WithUsername(r.Context(), username)
	ctx = utils.WithNoteKey(ctx, key)
	return r.WithContext(ctx)
}

var testNoteKey = bytes.Repeat([]byte{7}, 32)

func testCertificate(username string) models.Certificate {
	return models.Certificate{
		CertID:    "00112233445566778899aabbccddeeff",
		Username:  username,
		PublicKey: []byte("-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----\n"),
		Signature: []byte{1, 2, 3},
		Issuer:    "SecurNote CA",
		IssuedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func boolPtr(b bool) *bool { return &b }

// serveRoute routes the request through chi so URL params resolve.
func serveRoute(method, pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

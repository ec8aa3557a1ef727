package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *Handler, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	h := newTestHandler(tokenAuth(), newMemFileService())

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/me"},
		{http.MethodGet, "/api/files/"},
		{http.MethodGet, "/api/files/.clipboard"},
		{http.MethodPut, "/api/files/.clipboard"},
		{http.MethodDelete, "/api/files/.clipboard"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := serve(t, h, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = serve(t, h, rt.method, rt.path, "garbage", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	h := newTestHandler(tokenAuth(), newMemFileService())

	rec := serve(t, h, http.MethodPatch, "/api/user/login", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_VersionIsPublic(t *testing.T) {
	h := newTestHandler(tokenAuth(), newMemFileService())

	rec := serve(t, h, http.MethodGet, "/api/version/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_FilesRoundTrip(t *testing.T) {
	h := newTestHandler(tokenAuth(), newMemFileService())
	const name = "0d9e7f6a-2a57-4a8e-9d4e-5b0a3f3c6d11.dat"

	rec := serve(t, h, http.MethodPut, "/api/files/"+name, "user-1", strings.NewReader("payload"))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, h, http.MethodGet, "/api/files/"+name, "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payload", rec.Body.String())

	// another account has its own folder
	rec = serve(t, h, http.MethodGet, "/api/files/"+name, "user-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h, http.MethodGet, "/api/files/", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"`+name+`","size":7,"modified":"0001-01-01T00:00:00Z","is_folder":false}]`, rec.Body.String())

	rec = serve(t, h, http.MethodDelete, "/api/files/"+name, "user-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/files/"+name, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

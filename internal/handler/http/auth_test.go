package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Login:    "alice",
	Password: "secret-pass",
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// register / login
// ─────────────────────────────────────────────

func TestAuthHandlers_IssueBearerToken(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID, u.Password = 1, ""
			return u, nil
		},
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 1, Login: u.Login}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(1), u.UserID)
			return stubToken(signedToken), nil
		},
	}
	h := newTestHandler(auth, nil)

	for _, handle := range map[string]http.HandlerFunc{"register": h.register, "login": h.login} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(userBody(t, validUser)))
		rec := httptest.NewRecorder()

		handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	}
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		tokenErr   error
		wantStatus int
	}{
		{name: "invalid JSON", body: "{not json", wantStatus: http.StatusBadRequest},
		{name: "invalid data", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "login taken", serviceErr: store.ErrLoginAlreadyExists, wantStatus: http.StatusConflict},
		{name: "unexpected", serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
		{name: "token failure", tokenErr: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
					return u, tt.serviceErr
				},
				createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
					return stubToken("t"), tt.tokenErr
				},
			}
			body := tt.body
			if body == "" {
				body = userBody(t, validUser)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
			rec := httptest.NewRecorder()
			newTestHandler(auth, nil).register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, app.MsgInternalServerError, errorBody(t, rec))
			}
		})
	}
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"unknown login", store.ErrNoUserWasFound, http.StatusUnauthorized},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()
			newTestHandler(auth, nil).login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe(t *testing.T) {
	h := newTestHandler(tokenAuth(), nil)

	rec := serve(t, h, http.MethodGet, "/api/user/me", "user-7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"login":"login-7"}`, rec.Body.String())
}

func TestMe_UserGone(t *testing.T) {
	auth := tokenAuth()
	auth.getUserFn = func(_ context.Context, _ int64) (models.UserInfo, error) {
		return models.UserInfo{}, store.ErrNoUserWasFound
	}

	rec := serve(t, newTestHandler(auth, nil), http.MethodGet, "/api/user/me", "user-7", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/mock"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/internal/validators"
	"github.com/MKhiriev/go-clip-keeper/models"
)

var testServerApp = config.ServerApp{
	PasswordHashKey: "hash-key",
	TokenSignKey:    "sign-key",
	TokenIssuer:     "clip-keeper-test",
	TokenDuration:   time.Hour,
	Version:         "1.0.0",
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testServerApp, logger.Nop()), repo
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_StoresHashedPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	hasher := utils.NewHasher(testServerApp.PasswordHashKey)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Login)
			assert.NotEqual(t, "secret-pass", u.Password)
			assert.True(t, hasher.Equal("secret-pass", u.Password))
			u.UserID = 7
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Empty(t, user.Password)
}

func TestRegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		want error
	}{
		{"empty login", models.User{Password: "secret-pass"}, validators.ErrInvalidLogin},
		{"padded login", models.User{Login: " alice", Password: "secret-pass"}, validators.ErrInvalidLogin},
		{"short password", models.User{Login: "alice", Password: "123"}, validators.ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)

			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret-pass"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	hasher := utils.NewHasher(testServerApp.PasswordHashKey)
	stored := models.User{UserID: 7, Login: "alice", Password: hasher.HashString("secret-pass")}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)

		user, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.UserID)
		assert.Empty(t, user.Password)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "guess"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Login(context.Background(), models.User{Login: "bob", Password: "secret-pass"})
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(context.Background(), models.User{Login: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ─────────────────────────────────────────────
// GetUser
// ─────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{UserID: 7, Login: "alice", Password: "digest"}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(8)).Return(models.User{}, store.ErrNoUserWasFound)

	info, err := svc.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.UserInfo{UserID: 7, Login: "alice"}, info)

	_, err = svc.GetUser(context.Background(), 8)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7, Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "alice", parsed.Login)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	other := NewAuthService(nil, config.ServerApp{
		PasswordHashKey: "hash-key",
		TokenSignKey:    "another-key",
		TokenIssuer:     testServerApp.TokenIssuer,
		TokenDuration:   time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{UserID: 7, Login: "alice"})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", foreign.SignedString} {
		_, err := svc.ParseToken(ctx, raw)
		assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid), raw)
	}
}

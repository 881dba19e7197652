package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []sse.Event
}

func (p *recordingPublisher) Publish(userID string, event sse.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func newTestAuthService(t *testing.T) (*AuthServiceImpl, *recordingPublisher) {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	publisher := &recordingPublisher{}
	svc := NewAuthService(
		sqlite.NewTransactor(db),
		sqlite.NewUserRepository(db),
		jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp),
		sqlite.NewJWTRepository(db),
		publisher,
	).(*AuthServiceImpl)
	svc.bcryptCost = bcrypt.MinCost
	return svc, publisher
}

func registerManager(t *testing.T, svc *AuthServiceImpl) auth.TokenResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:            "Manager",
		Email:           "Manager@Example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "manager",
	}, auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"})
	require.NoError(t, err)
	return resp
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, publisher := newTestAuthService(t)

	resp := registerManager(t, svc)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "manager@example.com", resp.Session.Email)
	assert.Equal(t, "Manager", resp.Session.Name)
	assert.Equal(t, user.RoleManager, resp.Session.Role)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, sse.EventSessionChanged, publisher.events[0].Event)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerManager(t, svc)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:            "Someone Else",
		Email:           "manager@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "admin",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:            "M",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
		Role:            "owner",
	}, auth.SessionTrackingRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	for _, field := range []string{"name", "email", "password", "confirm_password", "role"} {
		assert.Contains(t, fields, field)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerManager(t, svc)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "manager@example.com",
		Password: "password123",
		Role:     "manager",
	}, auth.SessionTrackingRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.RoleManager, resp.Session.Role)
}

func TestAuthService_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerManager(t, svc)

	cases := map[string]auth.LoginRequest{
		"unknown user":   {Email: "nobody@example.com", Password: "password123", Role: "manager"},
		"wrong password": {Email: "manager@example.com", Password: "wrong-password", Role: "manager"},
		"wrong role":     {Email: "manager@example.com", Password: "password123", Role: "admin"},
		"unknown role":   {Email: "manager@example.com", Password: "password123", Role: "owner"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), req, auth.SessionTrackingRequest{})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.EqualError(t, err, "invalid credentials")
		})
	}
}

func TestAuthService_Login_UnknownEmailStillComparesPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerManager(t, svc)

	var compared [][]byte
	svc.comparePassword = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email: "nobody@example.com", Password: "password123", Role: "manager",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	require.Len(t, compared, 1)

	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	assert.Equal(t, svc.bcryptCost, cost)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email: "manager@example.com", Password: "wrong-password", Role: "manager",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Len(t, compared, 2)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	tokens := registerManager(t, svc)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, tokens.Session, resp.Session)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	tokens := registerManager(t, svc)

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	svc, publisher := newTestAuthService(t)
	tokens := registerManager(t, svc)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, map[string]string{"state": "signed_out"}, publisher.events[1].Data)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	assert.ErrorIs(t, svc.Logout(context.Background(), "unknown"), auth.ErrInvalidToken)
}

func TestAuthService_CurrentSession(t *testing.T) {
	svc, _ := newTestAuthService(t)
	tokens := registerManager(t, svc)

	session, err := svc.CurrentSession(context.Background(), tokens.Session.UserID)
	require.NoError(t, err)
	assert.Equal(t, tokens.Session, session)

	_, err = svc.CurrentSession(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
